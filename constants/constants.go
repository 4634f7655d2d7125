package constants

const Namespace = "ruleset"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Rule names reported in outcomes and structured errors.
const (
	RuleRequired    = "required"
	RuleEquals      = "equals"
	RuleIn          = "in"
	RuleRange       = "range"
	RuleGreaterThan = "greater_than"
	RuleLessThan    = "less_than"
	RulePattern     = "pattern"
	RuleLength      = "length"
	RuleContains    = "contains"
	RuleInstanceOf  = "instance_of"
	RuleSubclassOf  = "subclass_of"
	RuleBlank       = "blank"
	RuleTruthy      = "truthy"
	RuleNot         = "not"
	RuleIf          = "if"
	RuleEach        = "each"
	RuleSchema      = "schema"
)

// Fixed message texts.
const (
	MessagePresence   = "must be present"
	MessageFallback   = "failed validation"
	MessageEachPrefix = "all values "
	MessageNotEach    = "not all values "
	MessageCollection = "must be a collection of mappings"
)
