package analysis

import "regexp"

// patternGroup ties a feedback subtype to the phrase patterns that signal it.
// Declaration order within a detector's group list is contractual: when two
// groups tie on match count, the earliest declared group wins.
type patternGroup struct {
	Subtype    string
	Label      string
	Suggestion string
	Patterns   []*regexp.Regexp
}

// rx compiles a pattern list. Patterns are written lowercase and matched
// against normalized text, which makes matching case-insensitive without
// per-pattern flags. Alternations are kept flat so arbitrary-length input
// cannot trigger pathological backtracking.
func rx(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// fallacyGroups are scanned in order by the fallacy detector
var fallacyGroups = []patternGroup{
	{
		Subtype:    "ad_hominem",
		Label:      "Ad Hominem",
		Suggestion: "Focus on addressing the argument itself rather than attacking the person making it.",
		Patterns: rx(
			`\byou(?:'re| are) just an? \w+`,
			`\bonly an? (?:idiot|fool|moron) would\b`,
			`\bpeople like you\b`,
			`\btypical \w+ (?:argument|response|talking point)\b`,
			`\bwhat would you know\b`,
		),
	},
	{
		Subtype:    "strawman",
		Label:      "Strawman",
		Suggestion: "Try responding to the actual argument being made; it can help to quote the original claim directly.",
		Patterns: rx(
			`\bby that logic\b`,
			`\bso (?:you're|you are) saying\b`,
			`\bwhat (?:you're|you are) really (?:saying|arguing)\b`,
			`\byou (?:just )?want (?:us|everyone|people) to\b`,
		),
	},
	{
		Subtype:    "false_dichotomy",
		Label:      "False Dichotomy",
		Suggestion: "There may be more than two options here; exploring middle-ground positions could strengthen your point.",
		Patterns: rx(
			`\beither \w+(?: \w+){0,4} or\b`,
			`\bonly two (?:options|choices|ways|sides)\b`,
			`\byou(?:'re| are) either with\b`,
			`\bif (?:you're|you are) not with us\b`,
		),
	},
	{
		Subtype:    "slippery_slope",
		Label:      "Slippery Slope",
		Suggestion: "Consider providing evidence for each step of the causal chain you're describing.",
		Patterns: rx(
			`\bwill (?:inevitably |eventually |only )?lead to\b`,
			`\bslippery slope\b`,
			`\bnext thing you know\b`,
			`\bwhere does it end\b`,
			`\bopen(?:s|ed|ing)? the floodgates\b`,
		),
	},
	{
		Subtype:    "appeal_to_emotion",
		Label:      "Appeal to Emotion",
		Suggestion: "Emotional appeals can be powerful, but pairing them with factual reasoning and objective evidence makes a stronger case.",
		Patterns: rx(
			`\bthink (?:of|about) the children\b`,
			`\b(?:disaster|catastrophe|nightmare|tragedy)\b`,
			`\bhow (?:dare|could) you\b`,
			`\bif you (?:really |truly )?cared? about\b`,
		),
	},
	{
		Subtype:    "hasty_generalization",
		Label:      "Hasty Generalization",
		Suggestion: "Be careful with sweeping generalizations; citing specific examples would make this more persuasive.",
		Patterns: rx(
			`\beveryone knows\b`,
			`\bnobody (?:ever )?(?:thinks|believes|wants|does)\b`,
			`\b(?:all|every single) \w+ (?:are|is) (?:always|never|all)\b`,
			`\bthey're all the same\b`,
		),
	},
	{
		Subtype:    "appeal_to_authority",
		Label:      "Appeal to Authority",
		Suggestion: "Citing specific sources would strengthen this point, and staying open to counter-evidence keeps the discussion balanced.",
		Patterns: rx(
			`\bstudies show\b`,
			`\bexperts (?:say|agree|all agree)\b`,
			`\bscience (?:says|proves|has proven)\b`,
			`\bresearch proves\b`,
			`\baccording to (?:all the experts|everyone who matters)\b`,
		),
	},
}

// inflammatoryGroup covers personal attacks, insults, and dismissiveness
var inflammatoryGroup = patternGroup{
	Subtype:    "personal_attack",
	Label:      "Personal Attack",
	Suggestion: "Rephrasing this without the personal attack would keep the focus on the ideas being discussed.",
	Patterns: rx(
		`\byou(?:'re| are) (?:so |really |just )?(?:stupid|dumb|an idiot|idiotic|ignorant|a moron|pathetic|clueless|delusional)\b`,
		`\bshut up\b`,
		`\bwhat an? (?:idiot|moron|joke)\b`,
		`\byour (?:argument|opinion|post) is (?:garbage|trash|worthless|a joke)\b`,
		`\bnobody cares what you think\b`,
		`\btypical (?:liberal|conservative|leftist|right-wing) (?:garbage|nonsense|drivel)\b`,
	),
}

// hostileGroup covers condescension markers
var hostileGroup = patternGroup{
	Subtype:    "hostile_tone",
	Label:      "Hostile Tone",
	Suggestion: "A less dismissive tone may invite more genuine engagement with your perspective.",
	Patterns: rx(
		`\bobviously you don't\b`,
		`\bclearly you (?:can't|don't|won't)\b`,
		`\banyone with half a brain\b`,
		`\bit's obvious that you\b`,
		`\bhow hard is (?:it|that) to understand\b`,
	),
}

// unsourcedGroup covers claims presented as established without a citation
var unsourcedGroup = patternGroup{
	Subtype:    "unsourced_claim",
	Label:      "Unsourced Claim",
	Suggestion: "Adding a source or citation for this claim would make it easier for others to engage with.",
	Patterns: rx(
		`\bstudies show\b`,
		`\bresearch (?:shows|proves|confirms)\b`,
		`\bstatistics (?:show|prove)\b`,
		`\bit's (?:a )?(?:well[- ])?known fact\b`,
		`\beverybody (?:knows|agrees)\b`,
		`\bdata (?:shows|proves)\b`,
		`\bproven fact\b`,
	),
}

// biasGroup covers loaded and charged language
var biasGroup = patternGroup{
	Subtype:    "loaded_language",
	Label:      "Loaded Language",
	Suggestion: "Some of this phrasing may come across as loaded; more neutral wording could help your point land.",
	Patterns: rx(
		`\b(?:radical|extremist|fanatic)s?\b`,
		`\bso-called\b`,
		`\b(?:disgraceful|despicable|outrageous)\b`,
		`\bany (?:reasonable|sane) person\b`,
		`\bit goes without saying\b`,
	),
}

// vaguePatterns feed the default specificity provider
var vaguePatterns = rx(
	`\b(?:some|many|a lot of) people (?:say|think|believe)\b`,
	`\bsort of\b`,
	`\bkind of\b`,
	`\b(?:stuff|things) like that\b`,
	`\bin some ways?\b`,
)

// genericResources is the fallback when a subtype has no dedicated links
var genericResources = []resource{
	{Title: "Logical Fallacies Overview", URL: "https://yourlogicalfallacyis.com/"},
}

type resource struct {
	Title string
	URL   string
}

// fallacyResources holds exactly 2 links per fallacy subtype
var fallacyResources = map[string][]resource{
	"ad_hominem": {
		{Title: "Ad Hominem Explained", URL: "https://yourlogicalfallacyis.com/ad-hominem"},
		{Title: "Attacking the Argument, Not the Person", URL: "https://www.logicallyfallacious.com/logicalfallacies/Ad-Hominem-Abusive"},
	},
	"strawman": {
		{Title: "The Strawman Fallacy", URL: "https://yourlogicalfallacyis.com/strawman"},
		{Title: "Steelmanning: The Opposite of Strawmanning", URL: "https://www.lesswrong.com/tag/steelmanning"},
	},
	"false_dichotomy": {
		{Title: "Black-or-White Thinking", URL: "https://yourlogicalfallacyis.com/black-or-white"},
		{Title: "False Dilemma", URL: "https://www.logicallyfallacious.com/logicalfallacies/False-Dilemma"},
	},
	"slippery_slope": {
		{Title: "The Slippery Slope Fallacy", URL: "https://yourlogicalfallacyis.com/slippery-slope"},
		{Title: "Evaluating Causal Chains", URL: "https://www.logicallyfallacious.com/logicalfallacies/Slippery-Slope"},
	},
	"appeal_to_emotion": {
		{Title: "Appeal to Emotion", URL: "https://yourlogicalfallacyis.com/appeal-to-emotion"},
		{Title: "Balancing Emotion and Evidence", URL: "https://www.logicallyfallacious.com/logicalfallacies/Appeal-to-Emotion"},
	},
	"hasty_generalization": {
		{Title: "Hasty Generalization", URL: "https://yourlogicalfallacyis.com/anecdotal"},
		{Title: "Sample Size and Generalization", URL: "https://www.logicallyfallacious.com/logicalfallacies/Hasty-Generalization"},
	},
	"appeal_to_authority": {
		{Title: "Appeal to Authority", URL: "https://yourlogicalfallacyis.com/appeal-to-authority"},
		{Title: "Evaluating Expert Claims", URL: "https://www.logicallyfallacious.com/logicalfallacies/Appeal-to-Authority"},
	},
}

// toneResources holds exactly 2 links for every tone subtype
var toneResources = []resource{
	{Title: "Constructive Disagreement", URL: "https://www.kialo.com/tour"},
	{Title: "How to Disagree Well", URL: "http://www.paulgraham.com/disagree.html"},
}

// clarityResources holds exactly 2 links per clarity subtype
var clarityResources = map[string][]resource{
	"unsourced_claim": {
		{Title: "Citing Sources in Arguments", URL: "https://owl.purdue.edu/owl/research_and_citation/"},
		{Title: "Evaluating Evidence", URL: "https://guides.library.cornell.edu/evaluate_news"},
	},
	"loaded_language": {
		{Title: "Loaded Language", URL: "https://yourlogicalfallacyis.com/loaded-question"},
		{Title: "Writing with Neutral Framing", URL: "https://www.plainlanguage.gov/guidelines/"},
	},
}
