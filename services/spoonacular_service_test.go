package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpoonacular(srv *httptest.Server) *SpoonacularService {
	return &SpoonacularService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		client:  srv.Client(),
	}
}

func TestSearchDietFilters(t *testing.T) {
	var captured url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"id": 716429, "title": "Pasta with Garlic", "image": "716429.jpg",
			 "nutrition": {"nutrients": [{"name": "Fat", "amount": 20}, {"name": "Calories", "amount": 584.4}]}}
		]}`))
	}))
	defer srv.Close()

	svc := testSpoonacular(srv)

	tests := []struct {
		dietType  string
		wantDiet  string
		wantIntol string
	}{
		{"none", "", ""},
		{"vegan", "vegan", ""},
		{"veg", "vegetarian", ""},
		{"gf", "", "gluten"},
	}

	for _, tt := range tests {
		t.Run(tt.dietType, func(t *testing.T) {
			results, err := svc.Search(context.Background(), "pasta", tt.dietType)
			require.NoError(t, err)

			assert.Equal(t, "pasta", captured.Get("query"))
			assert.Equal(t, "10", captured.Get("number"))
			assert.Equal(t, "true", captured.Get("addRecipeNutrition"))
			assert.Equal(t, "test-key", captured.Get("apiKey"))
			assert.Equal(t, tt.wantDiet, captured.Get("diet"))
			assert.Equal(t, tt.wantIntol, captured.Get("intolerances"))

			require.Len(t, results, 1)
			assert.Equal(t, 716429, results[0].ID)
			assert.Equal(t, "Pasta with Garlic", results[0].Title)
			assert.InDelta(t, 584.4, results[0].Calories, 0.001)
		})
	}
}

func TestSearchGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	svc := testSpoonacular(srv)
	_, err := svc.Search(context.Background(), "pasta", "none")
	assert.ErrorIs(t, err, ErrGateway)
}

func TestDetailAssemblesCompositeRecord(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/716429/nutritionWidget.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"calories": "584", "protein": "19g", "fat": "20g", "carbs": "84g"}`))
	})
	mux.HandleFunc("/recipes/716429/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 716429, "title": "Pasta with Garlic", "summary": "A cheap dish."}`))
	})
	mux.HandleFunc("/recipes/716429/analyzedInstructions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "", "steps": [{"number": 1, "step": "Boil pasta."}, {"number": 2, "step": "Add garlic."}]}]`))
	})
	mux.HandleFunc("/recipes/716429/priceBreakdownWidget.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalCost": 585.5}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := testSpoonacular(srv)
	detail, err := svc.Detail(context.Background(), 716429)
	require.NoError(t, err)

	assert.Equal(t, 716429, detail.ID)
	assert.Equal(t, "Pasta with Garlic", detail.Title)
	assert.Equal(t, 584, detail.Calories)
	assert.Equal(t, "19g", detail.Protein)
	assert.Equal(t, "20g", detail.Fat)
	assert.Equal(t, "84g", detail.Carbs)
	assert.Equal(t, []string{"Boil pasta.", "Add garlic."}, detail.Instructions)
	// Catalog reports hundredths; gateway stores whole units.
	assert.InDelta(t, 5.855, detail.Price, 0.0001)
}

func TestDetailFailsWhenAnyLookupFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/716429/nutritionWidget.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"calories": "584", "protein": "19g", "fat": "20g", "carbs": "84g"}`))
	})
	mux.HandleFunc("/recipes/716429/summary", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/recipes/716429/analyzedInstructions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/recipes/716429/priceBreakdownWidget.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalCost": 585.5}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := testSpoonacular(srv)
	_, err := svc.Detail(context.Background(), 716429)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestGatewayTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	svc := &SpoonacularService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 20 * time.Millisecond},
	}

	_, err := svc.Search(context.Background(), "pasta", "none")
	assert.ErrorIs(t, err, ErrGateway)
}

func TestParseCalories(t *testing.T) {
	assert.Equal(t, 584, parseCalories("584"))
	assert.Equal(t, 584, parseCalories("584 kcal"))
	assert.Equal(t, 584, parseCalories(" 584"))
	assert.Equal(t, 0, parseCalories("n/a"))
	assert.Equal(t, 0, parseCalories(""))
}
