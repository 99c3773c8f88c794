package insight

import "testing"

func TestExtractFactChecksURLs(t *testing.T) {
	got := ExtractFactChecks("see https://example.com/report and HTTP://OTHER.ORG/x for details")
	var urls []string
	for _, c := range got {
		if c.Type == "url" {
			urls = append(urls, c.Value)
		}
	}
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %v", urls)
	}
	if urls[0] != "https://example.com/report" {
		t.Errorf("unexpected first url %q", urls[0])
	}
}

func TestExtractFactChecksNumbers(t *testing.T) {
	got := ExtractFactChecks("he said 42 boxes arrived on day 7")
	var nums []string
	for _, c := range got {
		if c.Type == "number" {
			nums = append(nums, c.Value)
		}
	}
	if len(nums) != 2 || nums[0] != "42" || nums[1] != "7" {
		t.Errorf("expected [42 7], got %v", nums)
	}
}

func TestExtractFactChecksStatus(t *testing.T) {
	got := ExtractFactChecks("number 3")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Status != StatusToVerify || got[0].Source != "regex" {
		t.Errorf("unexpected candidate: %+v", got[0])
	}
}

func TestExtractFactChecksNothingToFind(t *testing.T) {
	if got := ExtractFactChecks("plain words only"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
	if got := ExtractFactChecks(""); got != nil {
		t.Errorf("expected nil for empty transcript, got %+v", got)
	}
}
