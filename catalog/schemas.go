package catalog

// Column layouts transcribed from the headers of the public halo catalogs
// hosted at slac.stanford.edu/~behroozi, July 2015 vintage. The Bolshoi,
// Bolshoi-Planck, and MultiDark Rockstar headers are identical; Consuelo's
// Rockstar header adds a halfmass radius column and reorders the tail.

// RockstarSchema describes the Rockstar hlist catalogs of the Bolshoi,
// Bolshoi-Planck, and MultiDark simulations.
var RockstarSchema = Schema{
	Name:   "rockstar-july19-2015",
	Header: "scale(0) id(1) desc_scale(2) desc_id(3) num_prog(4) pid(5) upid(6) desc_pid(7) phantom(8) sam_mvir(9) mvir(10) rvir(11) rs(12) vrms(13) mmp?(14) scale_of_last_MM(15) vmax(16) x(17) y(18) z(19) vx(20) vy(21) vz(22) Jx(23) Jy(24) Jz(25) Spin(26) Breadth_first_ID(27) Depth_first_ID(28) Tree_root_ID(29) Orig_halo_ID(30) Snap_num(31) Next_coprogenitor_depthfirst_ID(32) Last_progenitor_depthfirst_ID(33) Last_mainleaf_depthfirst_ID(34) Rs_Klypin(35) Mvir_all(36) M200b(37) M200c(38) M500c(39) M2500c(40) Xoff(41) Voff(42) Spin_Bullock(43) b_to_a(44) c_to_a(45) A[x](46) A[y](47) A[z](48) b_to_a(500c)(49) c_to_a(500c)(50) A[x](500c)(51) A[y](500c)(52) A[z](500c)(53) T/|U|(54) M_pe_Behroozi(55) M_pe_Diemer(56) Macc(57) Mpeak(58) Vacc(59) Vpeak(60) Halfmass_Scale(61) Acc_Rate_Inst(62) Acc_Rate_100Myr(63) Acc_Rate_1*Tdyn(64) Acc_Rate_2*Tdyn(65) Acc_Rate_Mpeak(66) Mpeak_Scale(67) Acc_Scale(68) First_Acc_Scale(69) First_Acc_Mvir(70) First_Acc_Vmax(71) Vmax@Mpeak(72)",
	Columns: []Column{
		{"halo_scale_factor", KindFloat},
		{"halo_id", KindInt},
		{"halo_scale_factor_desc", KindFloat},
		{"halo_id_desc", KindInt},
		{"halo_num_prog", KindInt},
		{"halo_pid", KindInt},
		{"halo_upid", KindInt},
		{"halo_pid_desc", KindInt},
		{"halo_phantom", KindInt},
		{"halo_mvir_sam", KindFloat},
		{"halo_mvir", KindFloat},
		{"halo_rvir", KindFloat},
		{"halo_rs", KindFloat},
		{"halo_vrms", KindFloat},
		{"halo_mmp", KindInt},
		{"halo_scale_factor_lastmm", KindFloat},
		{"halo_vmax", KindFloat},
		{"halo_x", KindFloat},
		{"halo_y", KindFloat},
		{"halo_z", KindFloat},
		{"halo_vx", KindFloat},
		{"halo_vy", KindFloat},
		{"halo_vz", KindFloat},
		{"halo_jx", KindFloat},
		{"halo_jy", KindFloat},
		{"halo_jz", KindFloat},
		{"halo_spin", KindFloat},
		{"halo_id_breadth_first", KindInt},
		{"halo_id_depth_first", KindInt},
		{"halo_id_tree_root", KindInt},
		{"halo_id_orig", KindInt},
		{"halo_snap_num", KindInt},
		{"halo_id_next_coprog_depthfirst", KindInt},
		{"halo_id_last_prog_depthfirst", KindInt},
		{"halo_id_last_mainleaf_depthfirst", KindInt},
		{"halo_rs_klypin", KindFloat},
		{"halo_mvir_all", KindFloat},
		{"halo_m200b", KindFloat},
		{"halo_m200c", KindFloat},
		{"halo_m500c", KindFloat},
		{"halo_m2500c", KindFloat},
		{"halo_xoff", KindFloat},
		{"halo_voff", KindFloat},
		{"halo_spin_bullock", KindFloat},
		{"halo_b_to_a", KindFloat},
		{"halo_c_to_a", KindFloat},
		{"halo_axisA_x", KindFloat},
		{"halo_axisA_y", KindFloat},
		{"halo_axisA_z", KindFloat},
		{"halo_b_to_a_500c", KindFloat},
		{"halo_c_to_a_500c", KindFloat},
		{"halo_axisA_x_500c", KindFloat},
		{"halo_axisA_y_500c", KindFloat},
		{"halo_axisA_z_500c", KindFloat},
		{"halo_t_by_u", KindFloat},
		{"halo_mass_pe_behroozi", KindFloat},
		{"halo_mass_pe_diemer", KindFloat},
		{"halo_macc", KindFloat},
		{"halo_mpeak", KindFloat},
		{"halo_vacc", KindFloat},
		{"halo_vpeak", KindFloat},
		{"halo_halfmass_scale", KindFloat},
		{"halo_dmvir_dt_inst", KindFloat},
		{"halo_dmvir_dt_100myr", KindFloat},
		{"halo_dmvir_dt_tdyn", KindFloat},
		{"halo_dmvir_dt_2dtyn", KindFloat},
		{"halo_dmvir_dt_mpeak", KindFloat},
		{"halo_scale_factor_mpeak", KindFloat},
		{"halo_scale_factor_lastacc", KindFloat},
		{"halo_scale_factor_firstacc", KindFloat},
		{"halo_mvir_firstacc", KindFloat},
		{"halo_vmax_firstacc", KindFloat},
		{"halo_vmax_mpeak", KindFloat},
	},
}

// BDMSchema describes the Bolshoi BDM catalogs.
var BDMSchema = Schema{
	Name:   "bdm-july19-2015",
	Header: "scale(0) id(1) desc_scale(2) desc_id(3) num_prog(4) pid(5) upid(6) desc_pid(7) phantom(8) sam_mvir(9) mvir(10) rvir(11) rs(12) vrms(13) mmp?(14) scale_of_last_MM(15) vmax(16) x(17) y(18) z(19) vx(20) vy(21) vz(22) Jx(23) Jy(24) Jz(25) Spin(26) Breadth_first_ID(27) Depth_first_ID(28) Tree_root_ID(29) Orig_halo_ID(30) Snap_num(31) Next_coprogenitor_depthfirst_ID(32) Last_progenitor_depthfirst_ID(33) Xoff 2K/Ep-1 Rrms Axba Axca Xax Yax Zax Macc Mpeak Vacc Vpeak",
	Columns: []Column{
		{"halo_scale_factor", KindFloat},
		{"halo_id", KindInt},
		{"halo_scale_factor_desc", KindFloat},
		{"halo_id_desc", KindInt},
		{"halo_num_prog", KindInt},
		{"halo_pid", KindInt},
		{"halo_upid", KindInt},
		{"halo_pid_desc", KindInt},
		{"halo_phantom", KindInt},
		{"halo_mvir_sam", KindFloat},
		{"halo_mvir", KindFloat},
		{"halo_rvir", KindFloat},
		{"halo_rs", KindFloat},
		{"halo_vrms", KindFloat},
		{"halo_mmp", KindInt},
		{"halo_scale_factor_lastmm", KindFloat},
		{"halo_vmax", KindFloat},
		{"halo_x", KindFloat},
		{"halo_y", KindFloat},
		{"halo_z", KindFloat},
		{"halo_vx", KindFloat},
		{"halo_vy", KindFloat},
		{"halo_vz", KindFloat},
		{"halo_jx", KindFloat},
		{"halo_jy", KindFloat},
		{"halo_jz", KindFloat},
		{"halo_spin", KindFloat},
		{"halo_id_breadth_first", KindInt},
		{"halo_id_depth_first", KindInt},
		{"halo_id_tree_root", KindInt},
		{"halo_id_orig", KindInt},
		{"halo_snap_num", KindInt},
		{"halo_id_next_coprog_depthfirst", KindInt},
		{"halo_id_last_prog_depthfirst", KindInt},
		{"halo_xoff", KindFloat},
		{"halo_2k_ep", KindFloat},
		{"halo_rrms", KindFloat},
		{"halo_b_to_a", KindFloat},
		{"halo_c_to_a", KindFloat},
		{"halo_axisA_x", KindFloat},
		{"halo_axisA_y", KindFloat},
		{"halo_axisA_z", KindFloat},
		{"halo_macc", KindFloat},
		{"halo_mpeak", KindFloat},
		{"halo_vacc", KindFloat},
		{"halo_vpeak", KindFloat},
	},
}

// ConsueloRockstarSchema describes the Rockstar hlist catalogs of the
// Consuelo simulation, which carry an extra halfmass radius column between
// the pseudo-evolution masses and the accretion histories.
var ConsueloRockstarSchema = Schema{
	Name:   "rockstar-consuelo-july19-2015",
	Header: "scale(0) id(1) desc_scale(2) desc_id(3) num_prog(4) pid(5) upid(6) desc_pid(7) phantom(8) sam_mvir(9) mvir(10) rvir(11) rs(12) vrms(13) mmp?(14) scale_of_last_MM(15) vmax(16) x(17) y(18) z(19) vx(20) vy(21) vz(22) Jx(23) Jy(24) Jz(25) Spin(26) Breadth_first_ID(27) Depth_first_ID(28) Tree_root_ID(29) Orig_halo_ID(30) Snap_num(31) Next_coprogenitor_depthfirst_ID(32) Last_progenitor_depthfirst_ID(33) Last_mainleaf_depthfirst_ID(34) Rs_Klypin(35) Mvir_all(36) M200b(37) M200c(38) M500c(39) M2500c(40) Xoff(41) Voff(42) Spin_Bullock(43) b_to_a(44) c_to_a(45) A[x](46) A[y](47) A[z](48) b_to_a(500c)(49) c_to_a(500c)(50) A[x](500c)(51) A[y](500c)(52) A[z](500c)(53) T/|U|(54) M_pe_Behroozi(55) M_pe_Diemer(56) Halfmass_Radius(57) Macc(58) Mpeak(59) Vacc(60) Vpeak(61) Halfmass_Scale(62) Acc_Rate_Inst(63) Acc_Rate_100Myr(64) Acc_Rate_1*Tdyn(65) Acc_Rate_2*Tdyn(66) Acc_Rate_Mpeak(67) Mpeak_Scale(68) Acc_Scale(69) First_Acc_Scale(70) First_Acc_Mvir(71) First_Acc_Vmax(72) Vmax@Mpeak(73)",
	Columns: insertColumn(RockstarSchema.Columns, 57, Column{"halo_halfmass_radius", KindFloat}),
}

func insertColumn(cols []Column, at int, col Column) []Column {
	out := make([]Column, 0, len(cols)+1)
	out = append(out, cols[:at]...)
	out = append(out, col)
	return append(out, cols[at:]...)
}

// Schemas lists the known catalog schemas.
var Schemas = []Schema{RockstarSchema, ConsueloRockstarSchema, BDMSchema}
