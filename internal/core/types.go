package core

const (
	AppName          = "memberqa"
	AppUserAgent     = "memberqa/0.1"
	AppRepositoryURL = "https://github.com/sandevgo/memberqa"
	AppVersion       = "0.1.0"
)

// Message is a single record from the member messages API.
type Message struct {
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Snapshot is the cached corpus together with the names derived from it.
type Snapshot struct {
	Messages []Message
	Names    []string
}

type Intent string

const (
	IntentCount     Intent = "COUNT"
	IntentFavorites Intent = "FAVORITES"
	IntentWhen      Intent = "WHEN"
	IntentWhere     Intent = "WHERE"
	IntentWhat      Intent = "WHAT"
	IntentOther     Intent = "OTHER"
)

// OpenEnded reports whether a generative answer may replace an extracted one.
func (i Intent) OpenEnded() bool {
	return i == IntentWhat || i == IntentOther
}

const (
	AnswerNoMember = "I couldn't find any messages for that member."
	AnswerNoAnswer = "I can't answer from the available messages."
)

type Outcome string

const (
	OutcomeAnswered   Outcome = "answered"
	OutcomeNoMember   Outcome = "no_member"
	OutcomeNoEvidence Outcome = "no_evidence"
	OutcomeNoAnswer   Outcome = "no_answer"
)

type Source string

const (
	SourceExtract    Source = "extract"
	SourceCompletion Source = "completion"
	SourceNone       Source = "none"
)

// Result is the outcome of a single ask. Answer is always user-presentable.
type Result struct {
	Answer  string
	Member  string
	Intent  Intent
	Outcome Outcome
	Source  Source
}
