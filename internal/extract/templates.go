package extract

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// templateFile is the on-disk form of a fingerprint template set. New
// document templates register their own fixed item sets here without
// touching the extraction logic.
type templateFile struct {
	Templates []struct {
		Name   string `yaml:"name"`
		Marker string `yaml:"marker"`
		Items  []struct {
			Code      string  `yaml:"code"`
			Quantity  float64 `yaml:"quantity"`
			LineTotal string  `yaml:"line_total"`
		} `yaml:"items"`
	} `yaml:"templates"`
}

// LoadTemplates reads fingerprint templates from a YAML file.
func LoadTemplates(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open templates file: %w", err)
	}

	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse templates file: %w", err)
	}

	templates := make([]Template, 0, len(tf.Templates))
	for _, raw := range tf.Templates {
		tpl := Template{Name: raw.Name, Marker: raw.Marker}
		for _, it := range raw.Items {
			total, err := decimal.NewFromString(it.LineTotal)
			if err != nil {
				return nil, fmt.Errorf("template %s item %s: bad line_total %q: %w", raw.Name, it.Code, it.LineTotal, err)
			}
			tpl.Items = append(tpl.Items, KnownItem{
				Code:      it.Code,
				Quantity:  it.Quantity,
				LineTotal: total,
			})
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}
