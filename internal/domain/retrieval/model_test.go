package retrieval

import "testing"

func TestRequestNormalizeSortOrderDefault(t *testing.T) {
	t.Parallel()

	got := Request{TopN: 5}.Normalize()
	if got.SortOrder != SortDesc {
		t.Fatalf("expected desc with topN, got %q", got.SortOrder)
	}

	got = Request{SortOrder: " ASC "}.Normalize()
	if got.SortOrder != SortAsc {
		t.Fatalf("expected asc, got %q", got.SortOrder)
	}

	got = Request{}.Normalize()
	if got.SortOrder != SortAsc {
		t.Fatalf("expected asc without topN, got %q", got.SortOrder)
	}
}

func TestRequestNormalizeDropsBlankValues(t *testing.T) {
	t.Parallel()

	got := Request{EntityIDs: []string{" BOS ", "", "  "}, Attributes: []string{"wins", " "}}.Normalize()
	if len(got.EntityIDs) != 1 || got.EntityIDs[0] != "BOS" {
		t.Fatalf("unexpected entity ids: %+v", got.EntityIDs)
	}
	if len(got.Attributes) != 1 || got.Attributes[0] != "wins" {
		t.Fatalf("unexpected attributes: %+v", got.Attributes)
	}
}

func TestRequestValidate(t *testing.T) {
	t.Parallel()

	from, to := 2010, 2000
	cases := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{name: "defaults", req: Request{}.Normalize()},
		{name: "zero top n means no limit", req: Request{TopN: 0, SortOrder: SortDesc}},
		{name: "top n at limit", req: Request{TopN: MaxTopN}.Normalize()},
		{name: "top n too large", req: Request{TopN: MaxTopN + 1}.Normalize(), wantErr: true},
		{name: "negative top n", req: Request{TopN: -1, SortOrder: SortAsc}, wantErr: true},
		{name: "bad sort order", req: Request{SortOrder: "sideways"}.Normalize(), wantErr: true},
		{name: "inverted years", req: Request{FromYear: &from, ToYear: &to}.Normalize(), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRequestValidateTopNMessage(t *testing.T) {
	t.Parallel()

	err := Request{TopN: MaxTopN + 1}.Normalize().Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "topN must be between 0 and 1000 (0 = no limit)"; err.Error() != want {
		t.Fatalf("unexpected message: %q, want %q", err.Error(), want)
	}
}
