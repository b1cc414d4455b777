package llc

// OptLevel is a named optimization tier controlling the code generator's
// speed/size trade-offs.
type OptLevel int

// Enumeration of the supported optimization levels.
const (
	OptNone OptLevel = iota
	OptSpeed
	OptSpeedAndSize
	OptBest
	OptSize
)

// DefaultOptLevel is the level used when the caller does not request one.
const DefaultOptLevel = OptSpeed

// ParseOptLevel normalizes an optimization-level token into a level.  Each
// level has several equivalent spellings; any unrecognized token falls back
// to the default level rather than failing the compile.
func ParseOptLevel(token string) OptLevel {
	switch token {
	case "none", "0", "O0":
		return OptNone
	case "speed", "1", "O1":
		return OptSpeed
	case "speed_and_size", "2", "O2":
		return OptSpeedAndSize
	case "best", "3", "O3":
		return OptBest
	case "size", "s", "Os":
		return OptSize
	default:
		return DefaultOptLevel
	}
}

func (o OptLevel) String() string {
	switch o {
	case OptNone:
		return "none"
	case OptSpeed:
		return "speed"
	case OptSpeedAndSize:
		return "speed_and_size"
	case OptBest:
		return "best"
	default:
		return "size"
	}
}

// flag returns the llc optimization flag for the level.  llc exposes only the
// numeric tiers, so the size level rides on -O2.
func (o OptLevel) flag() string {
	switch o {
	case OptNone:
		return "-O0"
	case OptSpeed:
		return "-O1"
	case OptBest:
		return "-O3"
	default:
		return "-O2"
	}
}
