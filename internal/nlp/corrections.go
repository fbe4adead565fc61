package nlp

// Correction rewrites a misspelled or shorthand phrase.
type Correction struct {
	From string
	To   string
}

// DefaultCorrections is applied in order, each entry once.
var DefaultCorrections = []Correction{
	{From: "vắc xin", To: "vaccine"},
	{From: "vắc_xin", To: "vaccine"},
	{From: "hexxim", To: "hexaxim"},
	{From: "infanrixhexa", To: "infanrix hexa"},
	{From: "6in1", To: "6 trong 1"},
	{From: "vaxigrip", To: "vaxigrip tetra"},
	{From: "prevenar", To: "prevenar 13"},
	{From: "pneumovax", To: "pneumovax 23"},
	{From: "gardasil", To: "gardasil a"},
	{From: "varivaxx", To: "varivax"},
	{From: "boostrixx", To: "boostrix"},
}
