package remedy

import (
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fallback maps disease labels to remedy text for when the solutions table
// has no matching record. Entries are keyed case-insensitively by the exact
// label the classifier emits.
type Fallback struct {
	organic       map[string]string
	chemical      map[string]string
	organicCatch  string
	chemicalCatch string
}

const (
	genericOrganic  = "Apply a mixture of neem oil and water according to package instructions. Regularly remove affected leaves and ensure proper plant spacing."
	genericChemical = "Apply a broad-spectrum fungicide containing copper or sulfur compounds. Follow product instructions for application rates and frequency."
)

func defaults() *Fallback {
	return &Fallback{
		organic: map[string]string{
			"late blight":    "Mix 1 tablespoon of baking soda, 2.5 tablespoons of vegetable oil, and a few drops of liquid soap in 1 gallon of water. Spray on plants every 7-14 days.",
			"early blight":   "Apply neem oil spray or a mixture of 2 tablespoons of apple cider vinegar in 1 quart of water.",
			"powdery mildew": "Mix 1 tablespoon of baking soda with 1 teaspoon of mild soap and 1 gallon of water. Spray on affected areas.",
		},
		chemical: map[string]string{
			"late blight":    "Apply Chlorothalonil or Mancozeb based fungicide according to package instructions. Reapply every 7-10 days during favorable disease conditions.",
			"early blight":   "Use copper-based fungicides or products containing chlorothalonil. Apply according to product instructions.",
			"powdery mildew": "Apply sulfur-based fungicides or myclobutanil according to label instructions.",
		},
		organicCatch:  genericOrganic,
		chemicalCatch: genericChemical,
	}
}

// Load returns the fallback tables, overridden from an optional workbook so
// the curated entries can be versioned as data. A missing or unreadable
// workbook keeps the built-in defaults.
func Load(xlsxPath string) *Fallback {
	f := defaults()
	if xlsxPath == "" {
		return f
	}
	if err := f.loadXLSX(xlsxPath); err != nil {
		log.Printf("remedy workbook warn: %v", err)
	}
	return f
}

// loadXLSX reads sheets "Organic" and "Chemical": column A disease label,
// column B remedy text, first row is a header.
func (f *Fallback) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	load := func(sheet string, dst map[string]string) {
		rows, err := x.GetRows(sheet)
		if err != nil {
			return
		}
		for i, row := range rows {
			if i == 0 || len(row) < 2 {
				continue
			}
			disease := strings.ToLower(strings.TrimSpace(row[0]))
			text := strings.TrimSpace(row[1])
			if disease == "" || text == "" {
				continue
			}
			dst[disease] = text
		}
	}
	load("Organic", f.organic)
	load("Chemical", f.chemical)
	return nil
}

func (f *Fallback) Organic(disease string) string {
	if s, ok := f.organic[strings.ToLower(strings.TrimSpace(disease))]; ok {
		return s
	}
	return f.organicCatch
}

func (f *Fallback) Chemical(disease string) string {
	if s, ok := f.chemical[strings.ToLower(strings.TrimSpace(disease))]; ok {
		return s
	}
	return f.chemicalCatch
}

// HasCurated reports whether the label has its own entry in either table.
func (f *Fallback) HasCurated(disease string) bool {
	k := strings.ToLower(strings.TrimSpace(disease))
	_, o := f.organic[k]
	_, c := f.chemical[k]
	return o || c
}
