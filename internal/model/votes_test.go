package model

import "testing"

func TestParseVoteState(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    VoteState
		wantErr bool
	}{
		{"lowercase upvote", "upvote", VoteStateUp, false},
		{"mixed case", "UpVote", VoteStateUp, false},
		{"uppercase", "DOWNVOTE", VoteStateDown, false},
		{"past tense", "Upvoted", VoteStateUp, false},
		{"short form", "down", VoteStateDown, false},
		{"padded", "  upvote  ", VoteStateUp, false},
		{"empty means none", "", VoteStateNone, false},
		{"explicit none", "None", VoteStateNone, false},
		{"novote", "NoVote", VoteStateNone, false},
		{"garbage", "sideways", VoteStateUnknown, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseVoteState(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseVoteState(%q) error = %v; wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseVoteState(%q) = %q; want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseVoteType(t *testing.T) {
	testCases := []struct {
		input   string
		want    VoteType
		wantErr bool
	}{
		{"upvote", VoteUp, false},
		{"DOWNVOTE", VoteDown, false},
		{"up", VoteUp, false},
		{"down", VoteDown, false},
		{"", "", true},
		{"maybe", "", true},
	}

	for _, tc := range testCases {
		got, err := ParseVoteType(tc.input)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseVoteType(%q) error = %v; wantErr %v", tc.input, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseVoteType(%q) = %q; want %q", tc.input, got, tc.want)
		}
	}
}

func TestTallyAddRemove(t *testing.T) {
	tally := Tally{Upvotes: 5, Downvotes: 2}

	if got := tally.Add(VoteUp); got != (Tally{Upvotes: 6, Downvotes: 2}) {
		t.Errorf("Add(up) = %+v", got)
	}
	if got := tally.Add(VoteDown); got != (Tally{Upvotes: 5, Downvotes: 3}) {
		t.Errorf("Add(down) = %+v", got)
	}
	if got := tally.Remove(VoteDown); got != (Tally{Upvotes: 5, Downvotes: 1}) {
		t.Errorf("Remove(down) = %+v", got)
	}

	// counts clamp at zero instead of underflowing
	zero := Tally{}
	if got := zero.Remove(VoteUp); got != (Tally{}) {
		t.Errorf("Remove(up) on empty tally = %+v", got)
	}
	if got := zero.Remove(VoteDown); got != (Tally{}) {
		t.Errorf("Remove(down) on empty tally = %+v", got)
	}
}

func TestVoteStateMatches(t *testing.T) {
	if !VoteStateUp.Matches(VoteUp) {
		t.Error("upvoted state should match an upvote request")
	}
	if VoteStateUp.Matches(VoteDown) {
		t.Error("upvoted state should not match a downvote request")
	}
	if VoteStateNone.Matches(VoteUp) || VoteStateNone.Matches(VoteDown) {
		t.Error("no-vote state should match nothing")
	}
}
