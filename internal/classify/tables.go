package classify

// The default tables encode the product lines seen across residential AV
// projects. Order matters: more specific prefixes sit above generic ones.
//
// Manufacturer patterns require a trailing non-word boundary after the prefix,
// so a digit-suffixed model number (CORE3) will not match ^CORE\b and instead
// falls back to the raw leading segment. Category patterns tolerate trailing
// digits. The two tables are intentionally independent.

// DefaultManufacturerRules returns the built-in manufacturer table.
func DefaultManufacturerRules() []Rule {
	return []Rule{
		MustRule("Lutron", `^(RA2|RA3|RRST|HQP6|HQP7|QSGF|PD|CAS|LUT)\b`),
		MustRule("Crestron", `^(DM|CP4|MC4|PRO4|TSW|TST|CEN|DIN|AMP-X)\b`),
		MustRule("QSC", `^(CORE|TSC|NV|CXD|SPA)\b`),
		MustRule("Control4", `^(C4|EA|CA|DS2|T4)\b`),
		MustRule("Araknis", `^AN\b`),
		MustRule("WattBox", `^WB\b`),
		MustRule("Luma", `^(LUM|LVR)\b`),
		MustRule("Ubiquiti", `^(UDM|USW|UAP|U6|U7)\b`),
		MustRule("Sonos", `^(PLAY|ARC|BEAM|PORT|SUB|ERA)\b`),
		MustRule("Sonance", `^(VP|PS-S|MAG|SON)\b`),
		MustRule("Denon", `^(AVR|DN)\b`),
		MustRule("Marantz", `^(SR|NR|AV10|AMP10)\b`),
		MustRule("Sony", `^(XBR|VPL|STR|BRAVIA)\b`),
		MustRule("Samsung", `^(QN|UN|LH|LSP)\b`),
		MustRule("LG", `^OLED\b`),
		MustRule("Epson", `^(EH|LS|EPQ)\b`),
		MustRule("Middle Atlantic", `^(BGR|ERK|SRSR|RLNK)\b`),
		MustRule("Screen Innovations", `^(SI|ZRW)\b`),
		MustRule("Josh.ai", `^JOSH\b`),
		MustRule("Apple", `^(ATV|MTV)\b`),
	}
}

// DefaultCategoryRules returns the built-in category table.
func DefaultCategoryRules() []Rule {
	return []Rule{
		MustRule("Audio Processor", `^(CORE[0-9]*|CXD[0-9]*|SPA[0-9]*)`),
		MustRule("Control Processor", `^(CP4[0-9]*|MC4[0-9]*|PRO4[0-9]*|EA[0-9]*|HQP[0-9]*|JOSH)`),
		MustRule("Lighting Control", `^(RA2|RA3|RRST|PD[0-9]*-|DIN-|QSGF|CAS)`),
		MustRule("Shades", `^(ZRW|SI-|CSR[0-9]*)`),
		MustRule("Network Switch", `^(AN-[0-9]|USW|NV[0-9]*-)`),
		MustRule("Access Point", `^(UAP|U[67]-|AN-[0-9]+-AP)`),
		MustRule("Power", `^(WB-[0-9]|RLNK|PS-S)`),
		MustRule("Rack", `^(BGR|ERK|SRSR)`),
		MustRule("Touch Panel", `^(TSW[0-9]*|TST[0-9]*|TSC[0-9]*|T4[0-9]*)`),
		MustRule("Camera", `^(LUM-[0-9]|LVR|IPC[0-9]*)`),
		MustRule("Display", `^(XBR|QN[0-9]*|UN[0-9]*|OLED[0-9]*|LH[0-9]*|LSP[0-9]*)`),
		MustRule("Projector", `^(VPL|LS[0-9]*|EH-)`),
		MustRule("Receiver", `^(AVR|SR[0-9]*|NR[0-9]*|STR)`),
		MustRule("Speaker", `^(VP[0-9]*|MAG[0-9]*|PLAY[0-9]*|ERA[0-9]*|ARC|BEAM|SUB)`),
		MustRule("Streaming", `^(ATV|MTV|PORT)`),
		MustRule("Video Distribution", `^DM-`),
	}
}
