package ui

import "time"

// replyMsg carries the assistant's text reply for one turn.
type replyMsg struct {
	Reply string
	Err   error
}

// spokenMsg carries the synthesized audio artifact for the current reply.
// Err is orchestrator.ErrSuperseded when an override beat the synthesis.
type spokenMsg struct {
	Path string
	Err  error
}

// speakingTickMsg re-checks the speaking flag while a reply plays.
type speakingTickMsg time.Time
