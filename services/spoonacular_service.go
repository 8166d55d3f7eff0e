package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const spoonacularBaseURL = "https://api.spoonacular.com"

// SpoonacularService is the gateway to the external recipe catalog. Every
// call is a direct pass-through bounded by the client timeout — no caching,
// no retries. Any failure surfaces as ErrGateway.
type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSpoonacularService() *SpoonacularService {
	return &SpoonacularService{
		apiKey:  os.Getenv("SPOONACULAR_API_KEY"),
		baseURL: spoonacularBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// RecipeSummary is one search hit, with the calorie annotation pulled out of
// the nutrition block for list rendering.
type RecipeSummary struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Image    string  `json:"image"`
	Calories float64 `json:"calories"`
}

// RecipeDetail is the composite assembled from the four per-recipe endpoints.
type RecipeDetail struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Calories     int      `json:"calories"`
	Protein      string   `json:"protein"`
	Fat          string   `json:"fat"`
	Carbs        string   `json:"carbs"`
	Instructions []string `json:"instructions"`
	Price        float64  `json:"price"`
}

type complexSearchResponse struct {
	Results []struct {
		ID        int    `json:"id"`
		Title     string `json:"title"`
		Image     string `json:"image"`
		Nutrition struct {
			Nutrients []struct {
				Name   string  `json:"name"`
				Amount float64 `json:"amount"`
			} `json:"nutrients"`
		} `json:"nutrition"`
	} `json:"results"`
}

type nutritionWidgetResponse struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
	Carbs    string `json:"carbs"`
}

type summaryResponse struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type analyzedInstructionsResponse []struct {
	Name  string `json:"name"`
	Steps []struct {
		Number int    `json:"number"`
		Step   string `json:"step"`
	} `json:"steps"`
}

type priceBreakdownResponse struct {
	TotalCost float64 `json:"totalCost"`
}

// Search forwards the free-text query with at most one diet filter derived
// from the user's diet type, asking for up to 10 nutrition-annotated results.
func (s *SpoonacularService) Search(ctx context.Context, query, dietType string) ([]RecipeSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", "10")
	params.Set("addRecipeNutrition", "true")

	switch dietType {
	case "gf":
		params.Set("intolerances", "gluten")
	case "vegan":
		params.Set("diet", "vegan")
	case "veg":
		params.Set("diet", "vegetarian")
	}

	var sr complexSearchResponse
	if err := s.get(ctx, "/recipes/complexSearch", params, &sr); err != nil {
		return nil, err
	}

	results := make([]RecipeSummary, 0, len(sr.Results))
	for _, r := range sr.Results {
		summary := RecipeSummary{ID: r.ID, Title: r.Title, Image: r.Image}
		for _, n := range r.Nutrition.Nutrients {
			if n.Name == "Calories" {
				summary.Calories = n.Amount
				break
			}
		}
		results = append(results, summary)
	}
	return results, nil
}

// Detail issues the four per-recipe lookups concurrently and assembles the
// composite record. The catalog reports the price in hundredths of a
// currency unit; it is divided down before leaving the gateway.
func (s *SpoonacularService) Detail(ctx context.Context, recipeID int) (*RecipeDetail, error) {
	var (
		nut   nutritionWidgetResponse
		sum   summaryResponse
		instr analyzedInstructionsResponse
		price priceBreakdownResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.get(gctx, fmt.Sprintf("/recipes/%d/nutritionWidget.json", recipeID), nil, &nut)
	})
	g.Go(func() error {
		return s.get(gctx, fmt.Sprintf("/recipes/%d/summary", recipeID), nil, &sum)
	})
	g.Go(func() error {
		return s.get(gctx, fmt.Sprintf("/recipes/%d/analyzedInstructions", recipeID), nil, &instr)
	})
	g.Go(func() error {
		return s.get(gctx, fmt.Sprintf("/recipes/%d/priceBreakdownWidget.json", recipeID), nil, &price)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &RecipeDetail{
		ID:       recipeID,
		Title:    sum.Title,
		Summary:  sum.Summary,
		Calories: parseCalories(nut.Calories),
		Protein:  nut.Protein,
		Fat:      nut.Fat,
		Carbs:    nut.Carbs,
		Price:    price.TotalCost / 100,
	}
	for _, block := range instr {
		for _, step := range block.Steps {
			detail.Instructions = append(detail.Instructions, step.Step)
		}
	}
	return detail, nil
}

func (s *SpoonacularService) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrGateway, path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return nil
}

// parseCalories turns the widget's display string ("584" or "584 kcal")
// into an integer, tolerating trailing units.
func parseCalories(s string) int {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
