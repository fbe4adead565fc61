package knowledge

func staticDiseases() []Advisory {
	const dengue = "Vaccine phòng sốt xuất huyết (Dengvaxia) có sẵn ở một số quốc gia, nhưng chỉ khuyến nghị cho những người đã từng nhiễm dengue trước đó. Vui lòng tham khảo bác sĩ để đánh giá phù hợp."

	return []Advisory{
		{Key: "viêm gan c", Text: "Hiện tại, chưa có vaccine phòng viêm gan C. Bạn nên tham khảo bác sĩ về các biện pháp phòng ngừa như tránh tiếp xúc với máu nhiễm bệnh hoặc sử dụng bao cao su khi quan hệ tình dục."},
		{Key: "zika", Text: "Hiện không có vaccine phòng Zika được phê duyệt rộng rãi. WHO khuyến nghị tránh muỗi đốt và tham khảo ý kiến bác sĩ nếu bạn ở khu vực có nguy cơ cao."},
		{Key: "dengue", Text: dengue},
		{Key: "omicron", Text: "Không có vaccine riêng cho biến thể Omicron, nhưng các vaccine COVID-19 hiện tại (như Pfizer, Moderna) cung cấp bảo vệ một phần. Bạn nên tiêm nhắc lại theo khuyến cáo của Bộ Y tế."},
		{Key: "hiv", Text: "Hiện chưa có vaccine phòng HIV. Các biện pháp phòng ngừa bao gồm sử dụng bao cao su và kiểm tra sức khỏe định kỳ."},
		{Key: "sốt xuất huyết", Text: dengue},
		{Key: "ebola", Text: "Vaccine phòng Ebola (rVSV-ZEBOV) được sử dụng trong các đợt bùng phát, nhưng không phổ biến tại Việt Nam. Liên hệ cơ quan y tế để biết thêm chi tiết."},
		{Key: "viêm phổi do virus", Text: "Không có vaccine cụ thể cho viêm phổi do virus nói chung, nhưng vaccine cúm (Vaxigrip Tetra) và phế cầu (Prevenar 13) có thể phòng một số nguyên nhân gây viêm phổi."},
		{Key: "sars-cov-2", Text: "Các vaccine COVID-19 (như Pfizer, Moderna, AstraZeneca) được sử dụng rộng rãi. Bạn nên tiêm nhắc lại theo khuyến cáo của Bộ Y tế."},
		{Key: "lyme", Text: "Hiện không có vaccine phòng bệnh Lyme cho con người. Biện pháp phòng ngừa bao gồm tránh bị bọ chét cắn khi ở khu vực có nguy cơ."},
		{Key: "sốt rét", Text: "Hiện chưa có vaccine phòng sốt rét được sử dụng rộng rãi tại Việt Nam. Vaccine RTS,S/AS01 được thử nghiệm ở một số khu vực, nhưng cần tham khảo bác sĩ."},
		{Key: "lao", Text: "Vaccine BCG được sử dụng để phòng lao, đặc biệt cho trẻ sơ sinh. Tuy nhiên, hiệu quả bảo vệ ở người lớn có thể hạn chế."},
		{Key: "viêm màng não", Text: "Vaccine phòng viêm màng não (như Menactra, Menveo) có sẵn cho một số chủng vi khuẩn. Tham khảo bác sĩ để chọn loại phù hợp."},
	}
}

func staticConditions() []Advisory {
	return []Advisory{
		{Key: "dị ứng penicillin", Text: "Hầu hết vaccine (như Infanrix Hexa, Hexaxim) không chứa penicillin, nhưng bạn nên kiểm tra với bác sĩ để đảm bảo an toàn, đặc biệt với các vaccine có thành phần phức tạp."},
		{Key: "suy giảm miễn dịch", Text: "Người suy giảm miễn dịch (ví dụ: HIV, ung thư) có thể cần tránh một số vaccine sống (như MMR II, Varivax). Vaccine bất hoạt (như Vaxigrip Tetra) thường an toàn hơn, nhưng cần tư vấn bác sĩ."},
		{Key: "phụ nữ mang thai", Text: "Một số vaccine như cúm (Vaxigrip Tetra) và bạch hầu-ho gà-uốn ván (Boostrix) được khuyến nghị cho phụ nữ mang thai. Tuy nhiên, vaccine sống (như MMR II) nên tránh. Vui lòng tham khảo bác sĩ."},
		{Key: "dị ứng thuốc", Text: "Nếu bạn dị ứng với thuốc, hãy cung cấp thông tin chi tiết cho bác sĩ trước khi tiêm vaccine để kiểm tra thành phần (ví dụ: kháng sinh, chất bảo quản)."},
		{Key: "trẻ dị ứng sữa", Text: "Hầu hết vaccine không chứa thành phần từ sữa, nhưng bạn nên xác nhận với bác sĩ, đặc biệt với các vaccine như Rotateq hoặc Rotarix."},
		{Key: "bệnh tiểu đường", Text: "Người bệnh tiểu đường có thể tiêm hầu hết vaccine (như Vaxigrip Tetra, Pneumovax 23) nếu sức khỏe ổn định. Tham khảo bác sĩ để đảm bảo an toàn."},
		{Key: "trẻ tự kỷ", Text: "Trẻ tự kỷ có thể tiêm vaccine theo lịch tiêm chủng thông thường. Không có bằng chứng vaccine gây tự kỷ. Tham khảo bác sĩ nếu có lo ngại."},
		{Key: "dị ứng hải sản", Text: "Hầu hết vaccine không chứa thành phần từ hải sản, nhưng bạn nên kiểm tra với bác sĩ để đảm bảo an toàn."},
		{Key: "cao huyết áp", Text: "Người cao huyết áp có thể tiêm vaccine nếu huyết áp ổn định. Vaccine như Vaxigrip Tetra hoặc Pneumovax 23 thường an toàn, nhưng nên tham khảo bác sĩ."},
		{Key: "trẻ sinh non", Text: "Trẻ sinh non có thể tiêm vaccine theo lịch tiêm chủng, nhưng cần điều chỉnh thời gian dựa trên tuổi điều chỉnh. Tham khảo bác sĩ để có lịch tiêm phù hợp."},
		{Key: "bệnh tim", Text: "Người bệnh tim có thể tiêm vaccine nếu tình trạng ổn định. Vaccine như Vaxigrip Tetra hoặc Pneumovax 23 thường được khuyến nghị, nhưng cần tư vấn bác sĩ."},
		{Key: "dị ứng latex", Text: "Một số vaccine có thể chứa latex trong nắp lọ hoặc bơm tiêm. Bạn nên kiểm tra với bác sĩ để chọn vaccine an toàn."},
		{Key: "bệnh gan", Text: "Người bệnh gan có thể tiêm vaccine nếu tình trạng ổn định. Vaccine viêm gan A (Havax) và viêm gan B (Gene Hbvax A) thường được khuyến nghị, nhưng cần tham khảo bác sĩ."},
		{Key: "hen suyễn", Text: "Trẻ bị hen suyễn có thể tiêm vaccine nếu tình trạng được kiểm soát. Vaccine cúm (Vaxigrip Tetra) đặc biệt quan trọng, nhưng cần tham khảo bác sĩ."},
		{Key: "dị ứng trứng", Text: "Một số vaccine cúm (như Vaxigrip Tetra) có thể chứa lượng nhỏ protein trứng, nhưng thường an toàn. Tham khảo bác sĩ nếu có tiền sử dị ứng nghiêm trọng."},
		{Key: "lupus", Text: "Người bị lupus nên tránh vaccine sống (như MMR II). Vaccine bất hoạt (như Vaxigrip Tetra) thường an toàn, nhưng cần tư vấn bác sĩ."},
	}
}
