package normalize

// The correction surface is kept as ordered static data so the rule set can be
// audited and extended without touching the phase logic in normalize.go.

// glyphTable maps a single corrupted code point to its intended text. The
// non-ASCII letters at the top are not typography: they are what the text
// layer of the known document family yields when the renderer substitutes a
// multi-letter ligature with an unrelated symbol.
var glyphTable = map[rune]string{
	// misrendered ligatures observed in the corrupted document family
	'Ɵ': "ti",
	'ɵ': "ti",
	'θ': "ti",
	'Θ': "ti",
	'Ʃ': "tt",
	'ƫ': "tti",
	'Ō': "ft",

	// typographic ligatures
	'ﬁ': "fi",
	'ﬂ': "fl",
	'ﬀ': "ff",
	'ﬃ': "ffi",
	'ﬄ': "ffl",
	'ﬅ': "ft",
	'ﬆ': "st",

	// quotes
	'‘': "'",
	'’': "'",
	'‚': "'",
	'‛': "'",
	'“': `"`,
	'”': `"`,
	'„': `"`,

	// dashes and ellipsis
	'–': "-",
	'—': "-",
	'−': "-",
	'…': "...",

	// exotic spaces
	'\u00a0': " ", // no-break space
	'\u2000': " ", // en quad
	'\u2001': " ", // em quad
	'\u2002': " ", // en space
	'\u2003': " ", // em space
	'\u2004': " ", // three-per-em space
	'\u2005': " ", // four-per-em space
	'\u2006': " ", // six-per-em space
	'\u2007': " ", // figure space
	'\u2008': " ", // punctuation space
	'\u2009': " ", // thin space
	'\u200a': " ", // hair space
	'\u202f': " ", // narrow no-break space
	'\u3000': " ", // ideographic space

	// zero-width marks and soft hyphen are dropped entirely
	'\u200b': "", // zero width space
	'\u200c': "", // zero width non-joiner
	'\u200d': "", // zero width joiner
	'\u2060': "", // word joiner
	'\ufeff': "", // zero width no-break space / BOM
	'\u00ad': "", // soft hyphen
}

// joinRule rejoins a word that fractured into literal fragments. Fragments
// match case-insensitively with optional whitespace between them, anchored at
// word boundaries, so "func ti on", "functi on" and "function" all match and
// rewrite to the same joined word.
type joinRule struct {
	parts []string
	repl  string
}

// prePassFixes run on the raw glyph stream before the table substitution.
// These are words where the glyph's table meaning would be wrong: in this
// family "Ɵ" almost always stands for "ti", but in the "ft" words below the
// same symbol appears where "ft" was dropped, and letting the table run first
// would bake in "sotiware" with no way back.
var prePassFixes = []joinRule{
	{[]string{"soƟwares"}, "softwares"},
	{[]string{"soƟware"}, "software"},
	{[]string{"aƟer"}, "after"},
	{[]string{"oƟen"}, "often"},
	{[]string{"leƟ"}, "left"},
	{[]string{"shiƟ"}, "shift"},
	{[]string{"theƟ"}, "theft"},
	{[]string{"draƟ"}, "draft"},
	{[]string{"craƟ"}, "craft"},
}

// postPassFixes assume the glyph table already ran and close up the artificial
// spaces it leaves around short substituted strings. These words have a
// leading fragment of a single letter, which the generic catch-all repair
// deliberately refuses to touch.
var postPassFixes = []joinRule{
	{[]string{"a", "tt", "ackers"}, "attackers"},
	{[]string{"a", "tt", "acker"}, "attacker"},
	{[]string{"a", "tt", "acks"}, "attacks"},
	{[]string{"a", "tt", "ack"}, "attack"},
	{[]string{"a", "tt", "achments"}, "attachments"},
	{[]string{"a", "tt", "achment"}, "attachment"},
	{[]string{"a", "tt", "ached"}, "attached"},
	{[]string{"a", "tt", "ach"}, "attach"},
	{[]string{"a", "tt", "empts"}, "attempts"},
	{[]string{"a", "tt", "empt"}, "attempt"},
	{[]string{"a", "tt", "en", "ti", "on"}, "attention"},
	{[]string{"a", "tt", "ributes"}, "attributes"},
	{[]string{"a", "tt", "ribute"}, "attribute"},
	{[]string{"u", "ti", "lity"}, "utility"},
	{[]string{"u", "ti", "lities"}, "utilities"},
	{[]string{"u", "ti", "lize"}, "utilize"},
	{[]string{"u", "ti", "lized"}, "utilized"},
	{[]string{"e", "ffi", "cient"}, "efficient"},
	{[]string{"e", "ffi", "ciency"}, "efficiency"},
	{[]string{"o", "ffi", "ce"}, "office"},
	{[]string{"o", "ffi", "cial"}, "official"},
}

// wordDictionary is the explicit reassembly table for the closed list of
// English words known to fracture under this corruption pattern. Ordering
// matters: longer or more specific entries come before their prefixes.
var wordDictionary = []joinRule{
	{[]string{"authen", "ti", "ca", "ti", "on"}, "authentication"},
	{[]string{"authen", "ti", "cated"}, "authenticated"},
	{[]string{"authen", "ti", "cate"}, "authenticate"},
	{[]string{"iden", "ti", "fica", "ti", "on"}, "identification"},
	{[]string{"iden", "ti", "fied"}, "identified"},
	{[]string{"iden", "ti", "fier"}, "identifier"},
	{[]string{"iden", "ti", "fy"}, "identify"},
	{[]string{"iden", "ti", "ty"}, "identity"},
	{[]string{"iden", "ti", "ties"}, "identities"},
	{[]string{"op", "ti", "mis", "ti", "c"}, "optimistic"},
	{[]string{"op", "ti", "miza", "ti", "on"}, "optimization"},
	{[]string{"op", "ti", "mize"}, "optimize"},
	{[]string{"op", "ti", "onal"}, "optional"},
	{[]string{"op", "ti", "ons"}, "options"},
	{[]string{"op", "ti", "on"}, "option"},
	{[]string{"func", "ti", "onality"}, "functionality"},
	{[]string{"func", "ti", "onal"}, "functional"},
	{[]string{"func", "ti", "ons"}, "functions"},
	{[]string{"func", "ti", "on"}, "function"},
	{[]string{"ques", "ti", "ons"}, "questions"},
	{[]string{"ques", "ti", "on"}, "question"},
	{[]string{"sec", "ti", "ons"}, "sections"},
	{[]string{"sec", "ti", "on"}, "section"},
	{[]string{"ac", "ti", "ons"}, "actions"},
	{[]string{"ac", "ti", "on"}, "action"},
	{[]string{"ac", "ti", "vely"}, "actively"},
	{[]string{"ac", "ti", "vity"}, "activity"},
	{[]string{"ac", "ti", "vities"}, "activities"},
	{[]string{"ac", "ti", "ve"}, "active"},
	{[]string{"informa", "ti", "onal"}, "informational"},
	{[]string{"informa", "ti", "on"}, "information"},
	{[]string{"applica", "ti", "ons"}, "applications"},
	{[]string{"applica", "ti", "on"}, "application"},
	{[]string{"organiza", "ti", "ons"}, "organizations"},
	{[]string{"organiza", "ti", "on"}, "organization"},
	{[]string{"opera", "ti", "ng"}, "operating"},
	{[]string{"opera", "ti", "ons"}, "operations"},
	{[]string{"opera", "ti", "on"}, "operation"},
	{[]string{"communica", "ti", "ons"}, "communications"},
	{[]string{"communica", "ti", "on"}, "communication"},
	{[]string{"configura", "ti", "ons"}, "configurations"},
	{[]string{"configura", "ti", "on"}, "configuration"},
	{[]string{"connec", "ti", "ons"}, "connections"},
	{[]string{"connec", "ti", "on"}, "connection"},
	{[]string{"instruc", "ti", "ons"}, "instructions"},
	{[]string{"instruc", "ti", "on"}, "instruction"},
	{[]string{"encryp", "ti", "on"}, "encryption"},
	{[]string{"decryp", "ti", "on"}, "decryption"},
	{[]string{"injec", "ti", "ons"}, "injections"},
	{[]string{"injec", "ti", "on"}, "injection"},
	{[]string{"detec", "ti", "on"}, "detection"},
	{[]string{"protec", "ti", "on"}, "protection"},
	{[]string{"direc", "ti", "ons"}, "directions"},
	{[]string{"direc", "ti", "on"}, "direction"},
	{[]string{"collec", "ti", "on"}, "collection"},
	{[]string{"selec", "ti", "on"}, "selection"},
	{[]string{"execu", "ti", "on"}, "execution"},
	{[]string{"evalua", "ti", "on"}, "evaluation"},
	{[]string{"valida", "ti", "on"}, "validation"},
	{[]string{"verifica", "ti", "on"}, "verification"},
	{[]string{"classifica", "ti", "on"}, "classification"},
	{[]string{"specifica", "ti", "ons"}, "specifications"},
	{[]string{"specifica", "ti", "on"}, "specification"},
	{[]string{"descrip", "ti", "on"}, "description"},
	{[]string{"defini", "ti", "on"}, "definition"},
	{[]string{"condi", "ti", "ons"}, "conditions"},
	{[]string{"condi", "ti", "on"}, "condition"},
	{[]string{"addi", "ti", "onal"}, "additional"},
	{[]string{"addi", "ti", "on"}, "addition"},
	{[]string{"tradi", "ti", "onal"}, "traditional"},
	{[]string{"posi", "ti", "ons"}, "positions"},
	{[]string{"posi", "ti", "on"}, "position"},
	{[]string{"solu", "ti", "ons"}, "solutions"},
	{[]string{"solu", "ti", "on"}, "solution"},
	{[]string{"resolu", "ti", "on"}, "resolution"},
	{[]string{"distribu", "ti", "on"}, "distribution"},
	{[]string{"destina", "ti", "on"}, "destination"},
	{[]string{"genera", "ti", "on"}, "generation"},
	{[]string{"educa", "ti", "on"}, "education"},
	{[]string{"crea", "ti", "on"}, "creation"},
	{[]string{"loca", "ti", "ons"}, "locations"},
	{[]string{"loca", "ti", "on"}, "location"},
	{[]string{"situa", "ti", "on"}, "situation"},
	{[]string{"examina", "ti", "on"}, "examination"},
	{[]string{"combina", "ti", "on"}, "combination"},
	{[]string{"permuta", "ti", "on"}, "permutation"},
	{[]string{"naviga", "ti", "on"}, "navigation"},
	{[]string{"enumera", "ti", "on"}, "enumeration"},
	{[]string{"escala", "ti", "on"}, "escalation"},
	{[]string{"valua", "ti", "on"}, "valuation"},
	{[]string{"excep", "ti", "on"}, "exception"},
	{[]string{"recep", "ti", "on"}, "reception"},
	{[]string{"percep", "ti", "on"}, "perception"},
	{[]string{"assump", "ti", "on"}, "assumption"},
	{[]string{"consump", "ti", "on"}, "consumption"},
	{[]string{"interrup", "ti", "on"}, "interruption"},
	{[]string{"corrup", "ti", "on"}, "corruption"},
	{[]string{"interna", "ti", "onal"}, "international"},
	{[]string{"na", "ti", "onal"}, "national"},
	{[]string{"na", "ti", "ve"}, "native"},
	{[]string{"ini", "ti", "alize"}, "initialize"},
	{[]string{"ini", "ti", "ally"}, "initially"},
	{[]string{"ini", "ti", "al"}, "initial"},
	{[]string{"ini", "ti", "ate"}, "initiate"},
	{[]string{"cri", "ti", "cal"}, "critical"},
	{[]string{"prac", "ti", "ces"}, "practices"},
	{[]string{"prac", "ti", "ce"}, "practice"},
	{[]string{"par", "ti", "cularly"}, "particularly"},
	{[]string{"par", "ti", "cular"}, "particular"},
	{[]string{"par", "ti", "ti", "on"}, "partition"},
	{[]string{"par", "ti", "cipate"}, "participate"},
	{[]string{"mul", "ti", "plica", "ti", "on"}, "multiplication"},
	{[]string{"mul", "ti", "ply"}, "multiply"},
	{[]string{"mul", "ti", "ple"}, "multiple"},
	{[]string{"effec", "ti", "vely"}, "effectively"},
	{[]string{"effec", "ti", "ve"}, "effective"},
	{[]string{"objec", "ti", "ves"}, "objectives"},
	{[]string{"objec", "ti", "ve"}, "objective"},
	{[]string{"respec", "ti", "vely"}, "respectively"},
	{[]string{"ac", "ti", "va", "ti", "on"}, "activation"},
	{[]string{"sta", "ti", "s", "ti", "cs"}, "statistics"},
	{[]string{"sta", "ti", "s", "ti", "cal"}, "statistical"},
	{[]string{"sta", "ti", "c"}, "static"},
	{[]string{"sta", "ti", "on"}, "station"},
	{[]string{"automa", "ti", "cally"}, "automatically"},
	{[]string{"automa", "ti", "c"}, "automatic"},
	{[]string{"automa", "ti", "on"}, "automation"},
	{[]string{"conven", "ti", "onal"}, "conventional"},
	{[]string{"conven", "ti", "on"}, "convention"},
	{[]string{"preven", "ti", "on"}, "prevention"},
	{[]string{"inven", "ti", "on"}, "invention"},
	{[]string{"poten", "ti", "ally"}, "potentially"},
	{[]string{"poten", "ti", "al"}, "potential"},
	{[]string{"essen", "ti", "al"}, "essential"},
	{[]string{"creden", "ti", "als"}, "credentials"},
	{[]string{"creden", "ti", "al"}, "credential"},
	{[]string{"confiden", "ti", "ality"}, "confidentiality"},
	{[]string{"confiden", "ti", "al"}, "confidential"},
	{[]string{"sensi", "ti", "ve"}, "sensitive"},
	{[]string{"posi", "ti", "ve"}, "positive"},
	{[]string{"nega", "ti", "ve"}, "negative"},
	{[]string{"rela", "ti", "ve"}, "relative"},
	{[]string{"alterna", "ti", "ves"}, "alternatives"},
	{[]string{"alterna", "ti", "ve"}, "alternative"},
	{[]string{"representa", "ti", "ve"}, "representative"},
	{[]string{"administra", "ti", "ve"}, "administrative"},
	{[]string{"administra", "ti", "on"}, "administration"},
	{[]string{"registra", "ti", "on"}, "registration"},
	{[]string{"integra", "ti", "on"}, "integration"},
	{[]string{"migra", "ti", "on"}, "migration"},
	{[]string{"no", "ti", "fica", "ti", "on"}, "notification"},
	{[]string{"no", "ti", "ce"}, "notice"},
	{[]string{"mo", "ti", "va", "ti", "on"}, "motivation"},
	{[]string{"en", "ti", "ti", "es"}, "entities"},
	{[]string{"en", "ti", "ty"}, "entity"},
	{[]string{"en", "ti", "re"}, "entire"},
	{[]string{"quan", "ti", "ty"}, "quantity"},
	{[]string{"ra", "ti", "o"}, "ratio"},
	{[]string{"dura", "ti", "on"}, "duration"},
	{[]string{"rota", "ti", "on"}, "rotation"},
	{[]string{"nota", "ti", "on"}, "notation"},
	{[]string{"transla", "ti", "on"}, "translation"},
	{[]string{"transporta", "ti", "on"}, "transportation"},
	{[]string{"implementa", "ti", "on"}, "implementation"},
	{[]string{"documenta", "ti", "on"}, "documentation"},
	{[]string{"presenta", "ti", "on"}, "presentation"},
	{[]string{"segmenta", "ti", "on"}, "segmentation"},
	{[]string{"authoriza", "ti", "on"}, "authorization"},
	{[]string{"virtualiza", "ti", "on"}, "virtualization"},
	{[]string{"normaliza", "ti", "on"}, "normalization"},
	{[]string{"u", "ti", "liza", "ti", "on"}, "utilization"},
}

// noisePatterns strip running headers, footers, watermarks, and credit lines
// injected by the document converters that produced the raw text. Applied
// before whitespace collapse, so line-oriented matches still see line ends.
var noisePatterns = []string{
	`https?://[^\s]+`,
	`(?i)\bwww\.[^\s]+`,
	`(?i)\bpage\s+\d+\s*(?:of|/)\s*\d+\b`,
	`(?i)(?:©|\(c\)|copyright)\s*\d{0,4}\s+[^\n]*`,
	`(?i)\b(?:downloaded|printed)\s+from\b[^\n]*`,
	`(?i)100%\s*(?:valid|pass|real)[^\n]*`,
	`(?i)\bguaranteed success\b[^\n]*`,
	`(?i)\bfree\s+(?:practice|demo)\s+(?:exam|test)s?\b[^\n]*`,
	`(?i)\bfor (?:more|full) (?:information|questions) visit\b[^\n]*`,
}
