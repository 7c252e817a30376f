package seed

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// category_id is only filled for questions whose category is not exported
// by name.
var csvHeader = []string{"category", "question", "answer", "difficulty", "category_id"}

// Load reads a seed file; the extension picks the format (.csv or JSON).
func Load(path string) (Data, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return Parse(filepath.Base(path), body)
}

func Parse(filename string, body []byte) (Data, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return ParseCSV(body)
	}
	var data Data
	if err := json.Unmarshal(body, &data); err != nil {
		return Data{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return data, nil
}

// ParseCSV reads rows of category,question,answer,difficulty[,category_id]
// after a header row. Rows with an empty category become uncategorised
// questions, keeping category_id when present.
func ParseCSV(body []byte) (Data, error) {
	r := csv.NewReader(strings.NewReader(string(body)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return Data{}, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) < 2 {
		return Data{}, fmt.Errorf("CSV must have header + at least 1 row")
	}

	catIndex := make(map[string]int)
	var data Data

	for line, row := range records[1:] {
		if len(row) < 3 {
			continue
		}
		catType := strings.TrimSpace(row[0])
		q := Question{
			Question: optional(row[1]),
			Answer:   optional(row[2]),
		}
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			d, err := strconv.Atoi(strings.TrimSpace(row[3]))
			if err != nil {
				return Data{}, fmt.Errorf("line %d: invalid difficulty %q", line+2, row[3])
			}
			q.Difficulty = &d
		}

		if catType == "" {
			if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
				id, err := strconv.Atoi(strings.TrimSpace(row[4]))
				if err != nil {
					return Data{}, fmt.Errorf("line %d: invalid category_id %q", line+2, row[4])
				}
				q.Category = &id
			}
			data.Questions = append(data.Questions, q)
			continue
		}
		i, ok := catIndex[catType]
		if !ok {
			i = len(data.Categories)
			catIndex[catType] = i
			data.Categories = append(data.Categories, Category{Type: catType})
		}
		data.Categories[i].Questions = append(data.Categories[i].Questions, q)
	}
	return data, nil
}

func WriteCSV(w io.Writer, data Data) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	write := func(catType string, questions []Question) error {
		for _, q := range questions {
			row := []string{catType, deref(q.Question), deref(q.Answer), "", ""}
			if q.Difficulty != nil {
				row[3] = strconv.Itoa(*q.Difficulty)
			}
			if catType == "" && q.Category != nil {
				row[4] = strconv.Itoa(*q.Category)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	for _, c := range data.Categories {
		if err := write(c.Type, c.Questions); err != nil {
			return err
		}
	}
	if err := write("", data.Questions); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
