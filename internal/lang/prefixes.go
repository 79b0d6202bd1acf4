package lang

// Nonbreaking-prefix tables, transcribed from the Moses
// share/nonbreaking_prefixes files. A prefix listed here, matched
// case-sensitively as a whole token and followed by a period, keeps that
// period attached instead of treating it as a sentence-final token.
//
// Languages without a published prefix file (the Indic set, Somali, Tetun,
// Cantonese, Chinese) keep an empty table, so only the generic period
// heuristics apply to them.

// addInitials registers each rune in letters as a one-letter Always prefix
// (personal-name initials such as "J. Smith").
func addInitials(m map[string]PrefixKind, letters string) map[string]PrefixKind {
	for _, r := range letters {
		m[string(r)] = PrefixAlways
	}
	return m
}

func always(m map[string]PrefixKind, words ...string) map[string]PrefixKind {
	for _, w := range words {
		m[w] = PrefixAlways
	}
	return m
}

func numericOnly(m map[string]PrefixKind, words ...string) map[string]PrefixKind {
	for _, w := range words {
		m[w] = PrefixNumericOnly
	}
	return m
}

const latinUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var prefixTables = map[Language]map[string]PrefixKind{
	En: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Adj", "Adm", "Adv", "Asst", "Bart", "Bldg", "Brig", "Bros", "Capt",
		"Cmdr", "Col", "Comdr", "Con", "Corp", "Cpl", "DR", "Dr", "Drs",
		"Ens", "Gen", "Gov", "Hon", "Hr", "Hosp", "Insp", "Lt", "MM", "MR",
		"MRS", "MS", "Maj", "Messrs", "Mlle", "Mme", "Mr", "Mrs", "Ms",
		"Msgr", "Op", "Ord", "Pfc", "Ph", "Prof", "Pvt", "Rep", "Reps",
		"Res", "Rev", "Rt", "Sen", "Sens", "Sgt", "Sr", "St", "Supt", "Surg",
		"v", "vs", "i.e", "rev", "e.g"),
		"No", "Nos", "Art", "Nr", "pp"),

	De: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Abb", "Abk", "Abt", "Apr", "Aug", "Bhf", "Bsp", "Dez", "Di", "Do",
		"Dr", "Fa", "Fam", "Feb", "Fr", "Frl", "Hbf", "Hr", "Hrn", "Jan",
		"Jh", "Jhd", "Jul", "Jun", "Mag", "Mai", "Mio", "Mo", "Mrd", "Mi",
		"Nov", "Okt", "Prof", "Sa", "Sep", "Sept", "So", "St", "Str",
		"bspw", "bzw", "d.h", "etc", "evtl", "geb", "gegr", "ggf", "inkl",
		"usw", "u.a", "z.B", "z.T", "zzgl"),
		"Nr", "Art", "ca"),

	Fr: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"M", "MM", "Mme", "Mmes", "Mlle", "Mlles", "Dr", "Prof", "St", "Ste",
		"av", "janv", "févr", "avr", "juil", "sept", "oct", "nov", "déc",
		"etc", "cf", "tél", "réf"),
		"art", "no", "p", "pp"),

	Es: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Sr", "Sra", "Srta", "Dr", "Dra", "D", "Dña", "Excmo", "Ilmo",
		"Prof", "Av", "Avda", "Gral", "Lic", "Ing", "Arq", "etc", "Ud",
		"Uds", "Vd", "Vds"),
		"núm", "pág", "cap"),

	It: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Sig", "Sigg", "Dott", "Prof", "Ing", "Avv", "Arch", "Geom", "Rag",
		"On", "Dr", "Gen", "Col", "ecc", "etc"),
		"n", "pag", "art"),

	Pt: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Sr", "Sra", "Srs", "Sras", "Dr", "Dra", "Drs", "Prof", "Av", "Est",
		"Gen", "Eng", "Exmo", "Exma", "etc"),
		"no", "pág", "págs"),

	Nl: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"bijv", "blz", "ca", "dhr", "dr", "drs", "ir", "jhr", "mevr", "mr",
		"prof", "St", "zgn"),
		"nr", "pag"),

	Ca: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Sr", "Sra", "Dr", "Dra", "Prof", "St", "Sta", "etc"),
		"núm", "pàg"),

	Cs: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Bc", "Dr", "Ing", "JUDr", "MUDr", "Mgr", "PhDr", "Prof", "RNDr",
		"apod", "atd", "c.k", "např", "p", "popř", "resp", "sv",
		"tj", "tzv", "zvl"),
		"č", "čís", "str"),

	El: numericOnly(always(addInitials(map[string]PrefixKind{},
		latinUpper+"ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ"),
		"κ", "κκ", "Δρ", "βλ", "π.χ"),
		"αρ", "σελ"),

	Et: always(addInitials(map[string]PrefixKind{}, latinUpper),
		"dr", "hr", "jne", "jt", "lk", "nn", "nt", "pr", "prof", "vt"),

	Fi: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"esim", "huom", "jne", "joht", "ks", "ml", "ns", "oy", "prof",
		"puh", "tms", "ym", "yms"),
		"nro", "s"),

	Ga: always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Uacht", "Dr", "B.Arch", "lch", "lgh", "uimh"),

	Hu: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Dr", "dr", "kb", "kft", "pl", "stb", "tel", "ún", "vö"),
		"old", "sz"),

	Is: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"dr", "hr", "frú", "nr", "o.fl", "o.s.frv", "sbr", "t.d", "þ.e"),
		"nr", "bls"),

	Lt: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"dr", "doc", "egz", "pav", "p", "pan", "plg", "pvz", "t.y", "žr"),
		"Nr", "psl"),

	Lv: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"dr", "doc", "piem", "prof", "t.i", "u.c", "utt", "sk"),
		"Nr", "lpp"),

	Pl: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"dr", "doc", "godz", "inż", "itd", "itp", "mgr", "np", "por", "prof",
		"św", "tj", "tzw", "ul", "wg", "zob"),
		"nr", "str", "r"),

	Ro: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"dl", "dna", "dr", "drd", "etc", "ex", "prof", "str"),
		"nr", "pag", "art"),

	Ru: numericOnly(always(addInitials(map[string]PrefixKind{},
		latinUpper+"АБВГДЕЖЗИКЛМНОПРСТУФХЦЧШЩЭЮЯ"),
		"г", "гг", "долл", "им", "проф", "руб", "тел", "ул"),
		"стр", "т", "№"),

	Sk: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"Bc", "Dr", "Ing", "JUDr", "MUDr", "Mgr", "Prof", "RNDr", "a.s",
		"atď", "napr", "resp", "t.j", "tzv"),
		"č", "str"),

	Sl: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"dr", "ipd", "itd", "npr", "oz", "prof", "t.i", "tj"),
		"št", "str"),

	Sv: numericOnly(always(addInitials(map[string]PrefixKind{}, latinUpper),
		"bl.a", "dvs", "d.v.s", "e.d", "etc", "f.d", "fr.o.m", "kl", "m.fl",
		"m.m", "osv", "s.k", "t.ex", "t.o.m"),
		"nr", "s"),

	Ta: always(addInitials(map[string]PrefixKind{}, latinUpper),
		"திரு", "திருமதி", "டாக்டர்", "பேரா"),
}
