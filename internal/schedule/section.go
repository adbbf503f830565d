package schedule

// Section identifies one display grouping of tasks.
type Section string

const (
	Today         Section = "today"
	ThisWeek      Section = "this-week"
	NextWeek      Section = "next-week"
	AfterNextWeek Section = "after-next-week"
	LongerTerm    Section = "longer-term"
	PersonalFocus Section = "personal-focus"
	WorkFocus     Section = "work-focus"
	ToRead        Section = "to-read"
)

// Sections lists every section in display order.
var Sections = []Section{
	Today,
	ThisWeek,
	NextWeek,
	AfterNextWeek,
	LongerTerm,
	PersonalFocus,
	WorkFocus,
	ToRead,
}

func (s Section) Valid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// Dated reports whether membership in s is decided by the due date.
func (s Section) Dated() bool {
	switch s {
	case Today, ThisWeek, NextWeek, AfterNextWeek, LongerTerm:
		return true
	}
	return false
}

func (s Section) String() string { return string(s) }
