package ingest

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brandresponse/brandintel/internal/model"
)

// sampleSize matches the demo coffee-shop dataset.
const sampleSize = 500

var (
	sampleFirstNames = []string{"John", "Sarah", "Michael", "Emma", "David", "Lisa", "Chris", "Anna"}
	sampleLastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}
	sampleDomains    = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com"}
	sampleCities     = []string{"Seattle", "Portland", "San Francisco", "Denver"}
	sampleStates     = []string{"WA", "OR", "CA", "CO"}
)

// SampleData generates the built-in coffee-shop customer list for users
// who want to explore the workflow without uploading data. The generator
// is seeded so every run produces the same records.
func SampleData() *model.RecordSet {
	rng := rand.New(rand.NewSource(42))

	rows := make([]map[string]string, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		first := sampleFirstNames[rng.Intn(len(sampleFirstNames))]
		last := sampleLastNames[rng.Intn(len(sampleLastNames))]
		rows = append(rows, map[string]string{
			"customer_id": fmt.Sprintf("CUST_%04d", i+1),
			"first_name":  first,
			"last_name":   last,
			"email":       fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), sampleDomains[rng.Intn(len(sampleDomains))]),
			"phone":       fmt.Sprintf("555-%03d-%04d", rng.Intn(900)+100, rng.Intn(9000)+1000),
			"city":        sampleCities[rng.Intn(len(sampleCities))],
			"state":       sampleStates[rng.Intn(len(sampleStates))],
			"zip":         fmt.Sprintf("%05d", rng.Intn(10000)+90000),
		})
	}

	return &model.RecordSet{
		Columns: []string{"customer_id", "first_name", "last_name", "email", "phone", "city", "state", "zip"},
		Rows:    rows,
	}
}
