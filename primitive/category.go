package primitive

// CategoryEnum is a set of string representations a serializer may use for
// primitive values. Several categories can apply to one kind; the first
// allowed one in the kind's precedence list wins.
type CategoryEnum int

const (
	CategoryTextNumber  CategoryEnum = 1 << iota // int, uint, float <-> decimal text: "42", "1.5"
	CategoryNumericBool                          // bool <-> "1", "0"
	CategoryTextualBool                          // bool <-> true/false, parses yes/no and on/off too
	CategoryDatetime                             // time.Time <-> RFC3339Nano text
	CategoryTimestamp                            // time.Time <-> Unix seconds: "1700000000"
	CategoryDuration                             // time.Duration <-> Go duration text: "2h45m0s"
	CategoryNanoseconds                          // time.Duration <-> integer nanoseconds
	CategorySeconds                              // time.Duration <-> floating-point seconds: "1.5"
	CategoryEnumString                           // named int/uint/bool/string <-> text of the underlying value, checked with IsValid

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone = 0               // no categories selected

	// CategoryText selects the canonical human-readable form of every kind.
	CategoryText = CategoryTextNumber | CategoryTextualBool | CategoryDatetime | CategoryDuration | CategoryEnumString
)

// precedence lists the categories able to represent each kind, preferred first.
var precedence = map[KindEnum][]CategoryEnum{
	KindBool:          {CategoryTextualBool, CategoryNumericBool},
	KindTime:          {CategoryDatetime, CategoryTimestamp},
	KindDuration:      {CategoryDuration, CategoryNanoseconds, CategorySeconds},
	KindPrimitiveEnum: {CategoryEnumString},
}

// Representation returns the category used to represent kind k as a string,
// or CategoryNone when no allowed category can. Strings need no category.
func (allowed CategoryEnum) Representation(k KindEnum) CategoryEnum {
	if k.IsNumber() {
		return allowed & CategoryTextNumber
	}

	for _, c := range precedence[k] {
		if allowed&c != 0 {
			return c
		}
	}

	return CategoryNone
}

// Allows reports whether the allowed categories permit converting values of
// kind k to and from strings.
func (allowed CategoryEnum) Allows(k KindEnum) bool {
	return k.IsTextual() || allowed.Representation(k) != CategoryNone
}
