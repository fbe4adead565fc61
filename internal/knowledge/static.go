package knowledge

// StaticTables returns a fresh copy of the compiled-in knowledge tables.
func StaticTables() Tables {
	return Tables{
		Facts:      staticFacts(),
		Synonyms:   staticSynonyms(),
		AgeAliases: staticAgeAliases(),
		Schedule:   staticSchedule(),
		Symptoms:   staticSymptoms(),
		Diseases:   staticDiseases(),
		Conditions: staticConditions(),
	}
}

func staticFacts() []VaccineFact {
	const (
		sixInOne    = "Vaccine 6 trong 1, phòng bạch hầu, uốn ván, ho gà, viêm gan B, bại liệt, Hib."
		rotavirus   = "Phòng tiêu chảy do rotavirus."
		pneumococ   = "Phòng các bệnh do phế cầu khuẩn."
		hpv         = "Phòng ung thư cổ tử cung và các bệnh do HPV."
		flu         = "Phòng cúm."
		varicella   = "Phòng thủy đậu."
		tdap        = "Phòng bạch hầu, ho gà, uốn ván."
		hepB        = "Phòng viêm gan B."
		mmr         = "Phòng sởi, quai bị, rubella."
		japaneseEnc = "Phòng viêm não Nhật Bản."
		rabies      = "Phòng dại."
		td          = "Phòng uốn ván, bạch hầu."
		hepA        = "Phòng viêm gan A."
	)

	return []VaccineFact{
		{Name: "Infanrix Hexa", Description: sixInOne, Origin: "Bỉ", Price: 1015000},
		{Name: "Hexaxim", Description: sixInOne, Origin: "Pháp", Price: 1050000},
		{Name: "Rotateq", Description: rotavirus, Origin: "Mỹ", Price: 650000},
		{Name: "Rotarix", Description: rotavirus, Origin: "Bỉ", Price: 620000},
		{Name: "Rotavin", Description: rotavirus, Origin: "Việt Nam", Price: 600000},
		{Name: "Synflorix", Description: pneumococ, Origin: "Bỉ", Price: 1045000},
		{Name: "Prevenar 13", Description: pneumococ, Origin: "Mỹ", Price: 1350000},
		{Name: "Pneumovax 23", Description: pneumococ, Origin: "Mỹ", Price: 950000},
		{Name: "Gardasil A", Description: hpv, Origin: "Mỹ", Price: 1800000},
		{Name: "Gardasil B", Description: hpv, Origin: "Mỹ", Price: 1800000},
		{Name: "Vaxigrip Tetra", Description: flu, Origin: "Pháp", Price: 350000},
		{Name: "Varivax", Description: varicella, Origin: "Mỹ", Price: 700000},
		{Name: "Boostrix", Description: tdap, Origin: "Bỉ", Price: 600000},
		{Name: "Varilrix", Description: varicella, Origin: "Bỉ", Price: 720000},
		{Name: "Influvac Tetra", Description: flu, Origin: "Hà Lan", Price: 340000},
		{Name: "GC Flu Quadrivalent", Description: flu, Origin: "Hàn Quốc", Price: 330000},
		{Name: "Ivacflu-S", Description: flu, Origin: "Việt Nam", Price: 300000},
		{Name: "BCG", Description: "Phòng lao.", Origin: "Việt Nam", Price: 100000},
		{Name: "Gene Hbvax A", Description: hepB, Origin: "Việt Nam", Price: 150000},
		{Name: "Heberbiovac A", Description: hepB, Origin: "Cuba", Price: 160000},
		{Name: "Gene Hbvax B", Description: hepB, Origin: "Việt Nam", Price: 150000},
		{Name: "Heberbiovac B", Description: hepB, Origin: "Cuba", Price: 160000},
		{Name: "MVVac A", Description: mmr, Origin: "Việt Nam", Price: 200000},
		{Name: "MVVac B", Description: mmr, Origin: "Việt Nam", Price: 200000},
		{Name: "MMR II", Description: mmr, Origin: "Mỹ", Price: 250000},
		{Name: "Priorix", Description: mmr, Origin: "Bỉ", Price: 240000},
		{Name: "Imojev", Description: japaneseEnc, Origin: "Thái Lan", Price: 400000},
		{Name: "Jeev", Description: japaneseEnc, Origin: "Ấn Độ", Price: 380000},
		{Name: "Jevax", Description: japaneseEnc, Origin: "Việt Nam", Price: 350000},
		{Name: "Verorab A", Description: rabies, Origin: "Pháp", Price: 300000},
		{Name: "Verorab B", Description: rabies, Origin: "Ấn Độ", Price: 280000},
		{Name: "Abhayrab A", Description: rabies, Origin: "Pháp", Price: 300000},
		{Name: "Abhayrab B", Description: rabies, Origin: "Ấn Độ", Price: 280000},
		{Name: "Adacel", Description: tdap, Origin: "Canada", Price: 550000},
		{Name: "Tetraxim", Description: "Phòng bạch hầu, ho gà, uốn ván, bại liệt.", Origin: "Pháp", Price: 500000},
		{Name: "Uốn ván, bạch hầu hấp phụ A", Description: td, Origin: "Việt Nam", Price: 120000},
		{Name: "Uốn ván, bạch hầu hấp phụ B", Description: td, Origin: "Việt Nam", Price: 120000},
		{Name: "Twinrix", Description: "Phòng viêm gan A và B.", Origin: "Bỉ", Price: 800000},
		{Name: "Havax", Description: hepA, Origin: "Việt Nam", Price: 400000},
		{Name: "Avaxim", Description: hepA, Origin: "Pháp", Price: 450000},
	}
}

func staticSynonyms() []SynonymGroup {
	return []SynonymGroup{
		{Phrase: "6 trong 1", Vaccines: []string{"Infanrix Hexa", "Hexaxim"}},
		{Phrase: "vaccine phế cầu", Vaccines: []string{"Synflorix", "Prevenar 13", "Pneumovax 23"}},
		{Phrase: "vaccine viêm gan B", Vaccines: []string{"Gene Hbvax A", "Heberbiovac A", "Gene Hbvax B", "Heberbiovac B"}},
		{Phrase: "vaccine sởi", Vaccines: []string{"MVVac A", "MVVac B", "MMR II", "Priorix"}},
		{Phrase: "vaccine thủy đậu", Vaccines: []string{"Varivax", "Varilrix"}},
		{Phrase: "vaccine cúm", Vaccines: []string{"Vaxigrip Tetra", "Influvac Tetra", "GC Flu Quadrivalent", "Ivacflu-S"}},
		{Phrase: "vaccine viêm não Nhật Bản", Vaccines: []string{"Imojev", "Jeev", "Jevax"}},
		{Phrase: "vaccine dại", Vaccines: []string{"Verorab A", "Verorab B", "Abhayrab A", "Abhayrab B"}},
		{Phrase: "vaccine uốn ván bạch hầu", Vaccines: []string{"Uốn ván, bạch hầu hấp phụ A", "Uốn ván, bạch hầu hấp phụ B"}},
		{Phrase: "vaccine HPV", Vaccines: []string{"Gardasil A", "Gardasil B"}},
		{Phrase: "phế cầu người lớn", Vaccines: []string{"Pneumovax 23"}},
	}
}

func staticAgeAliases() map[string]string {
	return map[string]string{
		"trẻ sơ_sinh":     "trẻ sơ sinh",
		"tre so sinh":     "trẻ sơ sinh",
		"trẻ sơsinh":      "trẻ sơ sinh",
		"trẻ mới sinh":    "trẻ sơ sinh",
		"trẻ mới_sinh":    "trẻ sơ sinh",
		"sơ sinh":         "trẻ sơ sinh",
		"2 thang":         "2 tháng",
		"6 thang":         "6 tháng",
		"12 thang":        "12 tháng",
		"nguoi lon":       "người lớn",
		"người_lớn":       "người lớn",
		"nguoi_lon":       "người lớn",
		"ng lon":          "người lớn",
		"người lớn tuổi":  "người lớn",
		"người_lớn tuổi":  "người lớn",
		"nguoi lon tuoi":  "người lớn",
		"ng lon tuoi":     "người lớn",
	}
}

func staticSchedule() []ScheduleEntry {
	return []ScheduleEntry{
		{Age: "trẻ sơ sinh", Vaccines: []string{"BCG", "Gene Hbvax A"}},
		{Age: "2 tháng", Vaccines: []string{"Infanrix Hexa", "Hexaxim", "Prevenar 13", "Rotateq"}},
		{Age: "6 tháng", Vaccines: []string{"Infanrix Hexa", "Hexaxim", "Vaxigrip Tetra", "Rotarix"}},
		{Age: "12 tháng", Vaccines: []string{"Varivax", "Prevenar 13", "MMR II"}},
		{Age: "người lớn", Vaccines: []string{"Vaxigrip Tetra", "Pneumovax 23", "Twinrix", "Gardasil A"}},
	}
}

func staticSymptoms() []SymptomEntry {
	return []SymptomEntry{
		{Symptom: "sốt", Vaccines: []string{"Infanrix Hexa", "Hexaxim", "Vaxigrip Tetra", "Prevenar 13", "Rotateq"}},
		{Symptom: "sưng", Vaccines: []string{"Infanrix Hexa", "Hexaxim", "Prevenar 13", "Pneumovax 23"}},
		{Symptom: "quấy khóc", Vaccines: []string{"Infanrix Hexa", "Hexaxim", "Synflorix"}},
		{Symptom: "mệt mỏi", Vaccines: []string{"Vaxigrip Tetra", "Boostrix"}},
		{Symptom: "đau", Vaccines: []string{"Infanrix Hexa", "Hexaxim", "Boostrix"}},
		{Symptom: "chán ăn", Vaccines: []string{"Prevenar 13", "Synflorix", "Rotateq"}},
		{Symptom: "sốt nhẹ", Vaccines: []string{"Infanrix Hexa", "Hexaxim", "Vaxigrip Tetra"}},
		{Symptom: "đau cơ", Vaccines: []string{"Gardasil A", "Gardasil B"}},
		{Symptom: "nhức đầu", Vaccines: []string{"Gardasil A", "Gardasil B"}},
		{Symptom: "nổi hạch", Vaccines: []string{"BCG"}},
	}
}
