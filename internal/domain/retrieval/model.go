package retrieval

import (
	"errors"
	"fmt"
	"strings"
)

// Entity selects the attribute catalog a request is resolved against.
type Entity string

const (
	EntityPlayer Entity = "player"
	EntityTeam   Entity = "team"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	MaxTopN = 1000
)

// ErrUnknownSortKey is returned when sortBy does not resolve through the catalog.
var ErrUnknownSortKey = errors.New("unknown sort attribute")

// Request is the selection criteria of a retrieve call.
type Request struct {
	EntityIDs  []string
	Attributes []string
	TopN       int
	SortBy     string
	SortOrder  string
	FromYear   *int
	ToYear     *int
}

// Normalize trims input and fills the sort order default.
func (r Request) Normalize() Request {
	out := r
	out.EntityIDs = compact(r.EntityIDs)
	out.Attributes = compact(r.Attributes)
	out.SortBy = strings.TrimSpace(r.SortBy)
	out.SortOrder = strings.ToLower(strings.TrimSpace(r.SortOrder))
	if out.SortOrder == "" {
		if out.TopN > 0 {
			out.SortOrder = SortDesc
		} else {
			out.SortOrder = SortAsc
		}
	}
	return out
}

func (r Request) Validate() error {
	if r.TopN < 0 || r.TopN > MaxTopN {
		return fmt.Errorf("topN must be between 0 and %d (0 = no limit)", MaxTopN)
	}
	if r.SortOrder != SortAsc && r.SortOrder != SortDesc {
		return fmt.Errorf("sortOrder must be %q or %q", SortAsc, SortDesc)
	}
	if r.FromYear != nil && r.ToYear != nil && *r.FromYear > *r.ToYear {
		return fmt.Errorf("fromYear must not be after toYear")
	}
	return nil
}

// Result is the row set plus the statement that produced it.
type Result struct {
	Rows   []map[string]any
	Query  string
	Params []any
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
