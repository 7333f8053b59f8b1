package symbol

// ArgsName and KwargsName are the conventional bare identifiers for a
// trailing *args/**kwargs sink when the declaring code doesn't pick a
// custom one. Builder.Args/Builder.KWargs store the bare name (spec §3's
// "synthetic names ... stored for rendering"); ParametersStr supplies the
// leading */** punctuation, so the stored name itself must never carry it
// or rendering would double it up.
const ArgsName = "args"
const KwargsName = "kwargs"

var (
	// Args and KWargs are the interned IDs for the conventional sink
	// names, passed to Builder.Args/Builder.KWargs as the sinks' names.
	// Sink names are not entered in a Signature's name lookup, so they
	// never resolve through Signature.IndexOfName.
	Args   = Intern(ArgsName)
	KWargs = Intern(KwargsName)
)
