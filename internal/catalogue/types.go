package catalogue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vaccine is one search result of the vaccines endpoint.
type Vaccine struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          Price    `json:"price"`
	CountryProduce *Country `json:"country_produce"`
	ImgURL         string   `json:"imgUrl"`
}

// Origin returns the producing country name, "" when absent.
func (v Vaccine) Origin() string {
	if v.CountryProduce == nil {
		return ""
	}
	return v.CountryProduce.Name
}

type Country struct {
	Name string `json:"name"`
}

// Schedule is one row of the schedules endpoint.
type Schedule struct {
	VaccineName string `json:"vaccine_name"`
}

// HealthCenter is one row of the health-centers endpoint.
type HealthCenter struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Price is a whole currency amount. The API serves decimals either as JSON
// numbers or as strings; both are rounded to the nearest unit.
type Price int64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*p = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", raw, err)
	}
	*p = Price(math.Round(f))
	return nil
}

// decodeResults accepts a paginated {"results": [...]} body or a bare list.
func decodeResults(raw json.RawMessage, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var page struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return err
	}
	if len(page.Results) == 0 || string(page.Results) == "null" {
		return nil
	}
	return json.Unmarshal(page.Results, out)
}
