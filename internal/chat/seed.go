package chat

import "time"

// The transcript ships fixed: an opening assistant message with citations
// into the sample annual report, and one canned reply used for every send.

func seedMessages() []Message {
	opened, _ := time.Parse(time.RFC3339, "2026-03-02T09:14:00Z")
	return []Message{
		{
			ID:        "msg-welcome",
			Content:   "I reviewed the annual report. Revenue grew 12% year over year [1], and EBITDA increased to USD 2.3 bn [2]. Operating cash flow remained stable [3].",
			IsUser:    false,
			Timestamp: opened,
			Citations: []Citation{
				{ID: 1, Text: "revenue grew 12% year over year", Page: 3},
				{ID: 2, Text: "EBITDA increased to USD 2.3 bn", Page: 5},
				{ID: 3, Text: "operating cash flow remained stable", Page: 7},
			},
		},
	}
}

func cannedReply() Message {
	return Message{
		Content: "The report attributes most of the margin improvement to lower input costs [1]. Let me know if you want the segment breakdown.",
		IsUser:  false,
		Citations: []Citation{
			{ID: 1, Text: "margin improvement driven by lower input costs", Page: 6},
		},
	}
}
