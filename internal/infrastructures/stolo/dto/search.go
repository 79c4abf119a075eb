package dto

// Request and response shapes of the stock-locator search endpoint. The
// schema is owned by the remote service; only the fields this tool consumes
// are declared.

const (
	SortByPrice   = "PRICE"
	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"
)

type SearchRequest struct {
	SearchContext  []SearchContext `json:"searchContext"`
	ResultsContext *ResultsContext `json:"resultsContext,omitempty"`
}

type SearchContext struct {
	Model  *SearchModel      `json:"model,omitempty"`
	VSSIDs *FilterWithValues `json:"vssIds,omitempty"`
}

type SearchModel struct {
	MarketingModelRange FilterWithValues `json:"marketingModelRange"`
}

type FilterWithValues struct {
	Value []string `json:"value"`
}

type ResultsContext struct {
	Sort []Sort `json:"sort"`
}

type Sort struct {
	By    string `json:"by"`
	Order string `json:"order"`
}

// NewModelSearchRequest builds the request body for a per-model search,
// asking the service for a price-ascending result page.
func NewModelSearchRequest(model string) SearchRequest {
	return SearchRequest{
		SearchContext: []SearchContext{{
			Model: &SearchModel{
				MarketingModelRange: FilterWithValues{Value: []string{model}},
			},
		}},
		ResultsContext: &ResultsContext{
			Sort: []Sort{{By: SortByPrice, Order: SortOrderAsc}},
		},
	}
}

// NewVSSIDSearchRequest builds the request body for a lookup of a single
// listing by its VSS ID.
func NewVSSIDSearchRequest(vssID string) SearchRequest {
	return SearchRequest{
		SearchContext: []SearchContext{{
			VSSIDs: &FilterWithValues{Value: []string{vssID}},
		}},
	}
}

type SearchResponse struct {
	Hits     []Hit    `json:"hits"`
	Metadata Metadata `json:"metadata"`
}

type Hit struct {
	Country string  `json:"country"`
	Score   float64 `json:"score"`
	Vehicle Vehicle `json:"vehicle"`
}

type Metadata struct {
	TotalCount int `json:"totalCount"`
}
