package agent

import (
	"context"
	"fmt"

	"github.com/mfogaca/brokerage"
	"github.com/mfogaca/brokerage/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a real-estate brokerage. He is here primarily to understand his sales,
			his commissions and the money flowing through his books.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the market analyst expert, grounded on Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert real-estate market analyst,
		very well aware of property markets, financing conditions and
		the latest news about the real-estate sector.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in real-estate markets. You can search and find about anything
			related to property markets, developers, financing and regulation.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of the user's book, able to read
// statements, summaries and compute commissions through function calls.
func NewBookkeeper(dir, book string) *Expert {
	lib := []Function{
		newStatementFunc(dir, book),
		newSummaryFunc(dir, book),
		commissionFunc,
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the brokerage book:
		its sales, its ledger and its running balance.
		He can show statements, period summaries, and compute commission breakdowns.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of a real-estate brokerage book.
				You know how to use the Tools to extract relevant information about
				the sales, the ledger entries and the balances.
				You are part of a team of experts, yours is everything recorded in the book.
				Pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

const dateFormat = `Dates use YYYY-MM-DD, or a relative form like -3d, -2w, -1m, -1q, -1y from today.`

func newStatementFunc(dir, book string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Statement",
			Description: `Statement renders the book's ledger with its running balance,
			optionally filtered by free text, category, and date range.
			Filters only select displayed rows, balances stay those of the full ledger.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "Case-insensitive free text matched against entry descriptions.",
					},
					"category": {
						Type:        genai.TypeString,
						Description: "Exact category name to filter on.",
					},
					"from": {
						Type:        genai.TypeString,
						Description: "Start date, inclusive. " + dateFormat,
					},
					"to": {
						Type:        genai.TypeString,
						Description: "End date, inclusive. " + dateFormat,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the ledger entries with amounts and running balance.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := brokerage.FindBook(dir, book)
			if err != nil {
				return errorResponse(id, "Statement", err)
			}
			f := brokerage.Filter{}
			if q, ok := args["query"].(string); ok {
				f.Query = q
			}
			if c, ok := args["category"].(string); ok {
				f.Category = c
			}
			from, err := parseDate(args, "from")
			if err != nil {
				return errorResponse(id, "Statement", err)
			}
			to, err := parseDate(args, "to")
			if err != nil {
				return errorResponse(id, "Statement", err)
			}
			f.Range = brokerage.Range{From: from, To: to}

			st := brokerage.NewStatement(b.Ledger(), f)
			return outputResponse(id, "Statement", renderer.StatementMarkdown(b, st))
		},
	}
}

func newSummaryFunc(dir, book string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary renders the dashboard of a period: the sales card
			(counts, VGV, commission totals over approved sales) and the cashflow card
			(received, to receive, paid, to pay).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "Any date inside the period. Today is the default. " + dateFormat,
					},
					"period": {
						Type:        genai.TypeString,
						Description: "One of day, week, month, quarter, year. Month is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown summary of the period's sales and cashflow.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := brokerage.FindBook(dir, book)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			day, err := parseDate(args, "date")
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			if day.IsZero() {
				day = brokerage.Today()
			}
			period := brokerage.Monthly
			if p, ok := args["period"].(string); ok && p != "" {
				period, err = brokerage.ParsePeriod(p)
				if err != nil {
					return errorResponse(id, "Summary", err)
				}
			}
			r := brokerage.NewRange(day.StartOf(period), day.EndOf(period))
			cf := brokerage.NewCashflow(b.Ledger(), r)
			ss := brokerage.NewSalesSummary(b, r)
			return outputResponse(id, "Summary", renderer.SummaryMarkdown(cf, ss))
		},
	}
}

var commissionFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Commission",
		Description: `Commission computes a sale commission breakdown from its five inputs,
		without touching the book. All derived values are rounded to the cent;
		the agency share is the remainder of the split.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"unitValue":     {Type: genai.TypeNumber, Description: "The unit (property) value."},
				"commissionPct": {Type: genai.TypeNumber, Description: "Commission percentage over the unit value, e.g. 5 for 5%."},
				"taxPct":        {Type: genai.TypeNumber, Description: "Tax percentage over the gross commission."},
				"miscValue":     {Type: genai.TypeNumber, Description: "Flat miscellaneous deduction."},
				"agentSplitPct": {Type: genai.TypeNumber, Description: "Agent's percentage of the net base."},
			},
			Required: []string{"unitValue", "commissionPct", "agentSplitPct"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The gross commission, tax, net base, agent share and agency share.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		num := func(key string) float64 {
			v, _ := args[key].(float64)
			return v
		}
		in := brokerage.CommissionInputs{
			UnitValue:     brokerage.BRL(num("unitValue")),
			CommissionPct: brokerage.P(num("commissionPct")),
			TaxPct:        brokerage.P(num("taxPct")),
			MiscValue:     brokerage.BRL(num("miscValue")),
			AgentSplitPct: brokerage.P(num("agentSplitPct")),
		}
		b := brokerage.Compute(in)
		out := fmt.Sprintf("gross: %s\ntax: %s\nnet base: %s\nagent: %s\nagency: %s",
			b.Gross, b.Tax, b.NetBase(), b.Agent, b.Agency)
		return outputResponse(id, "Commission", out)
	},
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

// parseDate reads an optional date argument, zero when absent.
func parseDate(args map[string]any, key string) (brokerage.Date, error) {
	ival, ok := args[key]
	if !ok {
		return brokerage.Date{}, nil
	}
	sval, ok := ival.(string)
	if !ok {
		return brokerage.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", key, ival)
	}
	if sval == "" {
		return brokerage.Date{}, nil
	}
	date, err := brokerage.ParseDate(sval)
	if err != nil {
		return brokerage.Date{}, fmt.Errorf("argument %q must be a valid date, got %q. %s", key, sval, dateFormat)
	}
	return date, nil
}
