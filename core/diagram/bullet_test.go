package diagram

import (
	"reflect"
	"testing"
)

func TestClassifyBullet(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Bullet
	}{
		{
			name: "plain text",
			text: "Just a plain statement",
			want: Bullet{Raw: "Just a plain statement", Kind: KindPlain},
		},
		{
			name: "pipeline chain",
			text: "Identify friction -> Reduce steps -> A/B test",
			want: Bullet{
				Raw:   "Identify friction -> Reduce steps -> A/B test",
				Kind:  KindPipeline,
				Steps: []string{"Identify friction", "Reduce steps", "A/B test"},
			},
		},
		{
			name: "pipeline with empty segments",
			text: "Plan -> -> Execute",
			want: Bullet{
				Raw:   "Plan -> -> Execute",
				Kind:  KindPipeline,
				Steps: []string{"Plan", "Execute"},
			},
		},
		{
			name: "single segment still a chain",
			text: "Ship it ->",
			want: Bullet{
				Raw:   "Ship it ->",
				Kind:  KindPipeline,
				Steps: []string{"Ship it"},
			},
		},
		{
			name: "arrows only falls through to plain",
			text: "->",
			want: Bullet{Raw: "->", Kind: KindPlain},
		},
		{
			name: "heading with comma items",
			text: "Materials: organic cotton, recycled PET, hemp",
			want: Bullet{
				Raw:   "Materials: organic cotton, recycled PET, hemp",
				Kind:  KindHeading,
				Head:  "Materials",
				Items: []string{"organic cotton", "recycled PET", "hemp"},
			},
		},
		{
			name: "heading with mixed separators",
			text: "Channels: email; social | paid",
			want: Bullet{
				Raw:   "Channels: email; social | paid",
				Kind:  KindHeading,
				Head:  "Channels",
				Items: []string{"email", "social", "paid"},
			},
		},
		{
			name: "colon with empty tail stays plain",
			text: "Note:",
			want: Bullet{Raw: "Note:", Kind: KindPlain},
		},
		{
			name: "question mark is a decision",
			text: "Offer guest checkout?",
			want: Bullet{Raw: "Offer guest checkout?", Kind: KindDecision},
		},
		{
			name: "decision prefix is case-insensitive",
			text: "DECISION: pick a vendor",
			want: Bullet{Raw: "DECISION: pick a vendor", Kind: KindDecision},
		},
		{
			name: "decision beats pipeline",
			text: "Decision: build -> buy",
			want: Bullet{Raw: "Decision: build -> buy", Kind: KindDecision},
		},
		{
			name: "pipeline beats heading",
			text: "Rollout: pilot -> iterate -> scale",
			want: Bullet{
				Raw:   "Rollout: pilot -> iterate -> scale",
				Kind:  KindPipeline,
				Steps: []string{"Rollout: pilot", "iterate", "scale"},
			},
		},
		{
			name: "empty string",
			text: "",
			want: Bullet{Raw: "", Kind: KindPlain},
		},
		{
			name: "surrounding whitespace is trimmed",
			text: "  tidy me  ",
			want: Bullet{Raw: "tidy me", Kind: KindPlain},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyBullet(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClassifyBullet(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
