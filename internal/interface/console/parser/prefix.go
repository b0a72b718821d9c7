package parser

// Prefix introduces a named argument, e.g. "/c" in "add /c CS2103T".
type Prefix string

// Argument prefixes understood by the sub-parsers.
const (
	PrefixClass    Prefix = "/c"
	PrefixStudent  Prefix = "/s"
	PrefixName     Prefix = "/n"
	PrefixID       Prefix = "/id"
	PrefixMemo     Prefix = "/note"
	PrefixPhone    Prefix = "/p"
	PrefixEmail    Prefix = "/e"
	PrefixAddress  Prefix = "/a"
	PrefixSchedule Prefix = "/t"
	PrefixLessons  Prefix = "/l"
)

// String returns the prefix as typed.
func (p Prefix) String() string {
	return string(p)
}
