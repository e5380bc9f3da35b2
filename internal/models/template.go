package models

import "encoding/json"

type Template struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Price        int    `json:"price"` // USD
	Category     string `json:"category"`
	Img          string `json:"img"`
	FeaturesJSON string `json:"-"`
}

// Features decodes the stored feature list. A corrupted or empty payload
// yields an empty slice, never an error.
func (t Template) Features() []string {
	if t.FeaturesJSON == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(t.FeaturesJSON), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func (t *Template) SetFeatures(features []string) {
	if features == nil {
		features = []string{}
	}
	b, err := json.Marshal(features)
	if err != nil {
		t.FeaturesJSON = "[]"
		return
	}
	t.FeaturesJSON = string(b)
}
