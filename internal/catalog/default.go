package catalog

// Default returns the built-in parameter table. Entry order is load-bearing
// (see Resolve); new parameters should be appended, not inserted.
func Default() *Catalog {
	c, err := New([]Entry{
		{Name: "hemoglobin", Unit: "g/dL", Min: 12.0, Max: 16.0, Aliases: []string{"hb", "haemoglobin"}},
		{Name: "wbc", Unit: "cells/mcL", Min: 4000, Max: 10000, Aliases: []string{"white blood cells", "leukocytes"}},
		{Name: "rbc", Unit: "million cells/mcL", Min: 4.5, Max: 5.5, Aliases: []string{"red blood cells", "erythrocytes"}},
		{Name: "platelets", Unit: "cells/mcL", Min: 150000, Max: 400000, Aliases: []string{"platelet count", "thrombocytes"}},
		{Name: "glucose", Unit: "mg/dL", Min: 70, Max: 100, Aliases: []string{"blood sugar", "fasting glucose"}},
		{Name: "cholesterol", Unit: "mg/dL", Min: 0, Max: 200, Aliases: []string{"total cholesterol"}},
		{Name: "triglycerides", Unit: "mg/dL", Min: 0, Max: 150},
		{Name: "hdl", Unit: "mg/dL", Min: 40, Max: 200, Aliases: []string{"hdl cholesterol", "good cholesterol"}},
		{Name: "ldl", Unit: "mg/dL", Min: 0, Max: 100, Aliases: []string{"ldl cholesterol", "bad cholesterol"}},
		{Name: "creatinine", Unit: "mg/dL", Min: 0.7, Max: 1.3},
		{Name: "urea", Unit: "mg/dL", Min: 7, Max: 20, Aliases: []string{"blood urea nitrogen", "bun"}},
		{Name: "alt", Unit: "U/L", Min: 7, Max: 56, Aliases: []string{"sgpt", "alanine aminotransferase"}},
		{Name: "ast", Unit: "U/L", Min: 10, Max: 40, Aliases: []string{"sgot", "aspartate aminotransferase"}},
		{Name: "tsh", Unit: "mIU/L", Min: 0.4, Max: 4.0, Aliases: []string{"thyroid stimulating hormone"}},
		{Name: "t3", Unit: "ng/dL", Min: 80, Max: 200, Aliases: []string{"triiodothyronine"}},
		{Name: "t4", Unit: "mcg/dL", Min: 5.0, Max: 12.0, Aliases: []string{"thyroxine"}},
	})
	if err != nil {
		// the built-in table is validated by tests; a bad entry is a bug
		panic(err)
	}
	return c
}
