package models

// PostType tells whether the author is asking for help or offering it
type PostType string

const (
	PostTypeTaker PostType = "TAKER" // assistance requested
	PostTypeGiver PostType = "GIVER" // assistance offered
)

// AssistanceType categorizes the kind of help a post is about
type AssistanceType string

const (
	AssistanceTypeCommute AssistanceType = "COMMUTE"
	AssistanceTypeStudy   AssistanceType = "STUDY"
	AssistanceTypeEtc     AssistanceType = "ETC"
)

// ScheduleType describes how the assistance schedule is agreed on
type ScheduleType string

const (
	ScheduleTypeRecurring  ScheduleType = "RECURRING"
	ScheduleTypeNegotiable ScheduleType = "NEGOTIABLE"
)

// DisabilityType categorizes the disability a post or member relates to
type DisabilityType string

const (
	DisabilityTypeVisual   DisabilityType = "VISUAL"
	DisabilityTypeHearing  DisabilityType = "HEARING"
	DisabilityTypePhysical DisabilityType = "PHYSICAL"
	DisabilityTypeEtc      DisabilityType = "ETC"
)

// Gender of a member
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// PostStatus is derived from a post's matchings on every read; it is never
// persisted.
type PostStatus string

const (
	PostStatusRecruiting PostStatus = "RECRUITING"
	PostStatusFinished   PostStatus = "FINISHED"
)

// MatchingStatus is the lifecycle state of a matching. DONE is the only
// state the post status derivation cares about.
type MatchingStatus string

const (
	MatchingStatusPending    MatchingStatus = "PENDING"
	MatchingStatusInProgress MatchingStatus = "IN_PROGRESS"
	MatchingStatusDone       MatchingStatus = "DONE"
	MatchingStatusCanceled   MatchingStatus = "CANCELED"
)
