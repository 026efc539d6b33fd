// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package forms implements the recruitment questionnaire builder and
response collector.

A form moves through three states. While building, questions (1-5 scale
or free text) can be added and removed. Start freezes the question set
and opens response collection; answers are keyed by question identifier
with last-write-wins overwrites. Submit emits one response per frozen
question — unanswered questions yield an empty string, never a missing
entry — plus a Submission document ready for the document store, and is
terminal for the session. Reopen explicitly returns to a fresh builder.

	engine := forms.NewEngine()
	q, _ := engine.AddQuestion("Rate satisfaction", forms.TypeQuantitative)
	engine.Start()
	engine.SetResponse(q.ID, "4")
	responses, doc, _ := engine.Submit(time.Now())
*/
package forms
