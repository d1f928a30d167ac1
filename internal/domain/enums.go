package domain

// Classification describes how well the learner knows a sentence token.
type Classification string

const (
	ClassificationKnown   Classification = "known"
	ClassificationFuture  Classification = "future"
	ClassificationUnknown Classification = "unknown"
)

func (c Classification) String() string { return string(c) }

// TriageAction is a user decision in the frequency triage loop.
type TriageAction string

const (
	TriageActionKnown   TriageAction = "k"
	TriageActionUnknown TriageAction = "u"
	TriageActionAbort   TriageAction = "a"
)

func (a TriageAction) String() string { return string(a) }

func (a TriageAction) IsValid() bool {
	switch a {
	case TriageActionKnown, TriageActionUnknown, TriageActionAbort:
		return true
	}
	return false
}

// ReviewAction is a user decision in the candidate browsing loop.
type ReviewAction string

const (
	ReviewActionAccept            ReviewAction = "y"
	ReviewActionNext              ReviewAction = "n"
	ReviewActionPrevious          ReviewAction = "p"
	ReviewActionToggleTranslation ReviewAction = "t"
	ReviewActionMarkKnown         ReviewAction = "k"
	ReviewActionAbort             ReviewAction = "a"
)

func (a ReviewAction) String() string { return string(a) }

func (a ReviewAction) IsValid() bool {
	switch a {
	case ReviewActionAccept, ReviewActionNext, ReviewActionPrevious,
		ReviewActionToggleTranslation, ReviewActionMarkKnown, ReviewActionAbort:
		return true
	}
	return false
}
