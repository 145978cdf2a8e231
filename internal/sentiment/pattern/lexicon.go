package pattern

// entry holds the mean polarity and subjectivity rating for a lexicon word.
type entry struct {
	polarity     float64
	subjectivity float64
}

// lexicon maps lowercase sentiment-laden words to their ratings. Values are
// mean adjective senses on the usual [-1,1] polarity / [0,1] subjectivity
// scales used by pattern-style analyzers.
var lexicon = map[string]entry{
	// strongly positive
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"beautiful":   {0.85, 1.0},
	"best":        {1.0, 0.3},
	"brilliant":   {0.9, 0.9},
	"excellent":   {1.0, 1.0},
	"exceptional": {0.7, 0.8},
	"fabulous":    {0.7, 0.9},
	"fantastic":   {0.4, 0.9},
	"flawless":    {0.8, 0.9},
	"incredible":  {0.9, 0.9},
	"magnificent": {0.9, 0.9},
	"outstanding": {0.8, 0.9},
	"perfect":     {1.0, 1.0},
	"phenomenal":  {0.85, 0.9},
	"stunning":    {0.8, 0.9},
	"superb":      {0.9, 0.9},
	"terrific":    {0.8, 0.9},
	"wonderful":   {1.0, 1.0},

	// positive
	"adore":       {0.6, 0.9},
	"appreciate":  {0.4, 0.5},
	"attractive":  {0.5, 0.7},
	"better":      {0.5, 0.5},
	"charming":    {0.6, 0.8},
	"clean":       {0.367, 0.7},
	"clever":      {0.5, 0.7},
	"comfortable": {0.4, 0.6},
	"convenient":  {0.4, 0.6},
	"cool":        {0.35, 0.65},
	"delicious":   {0.7, 0.9},
	"delight":     {0.7, 0.8},
	"delightful":  {0.7, 0.8},
	"easy":        {0.433, 0.833},
	"effective":   {0.6, 0.6},
	"elegant":     {0.5, 0.7},
	"enjoy":       {0.4, 0.5},
	"enjoyable":   {0.4, 0.5},
	"excited":     {0.3, 0.7},
	"exciting":    {0.3, 0.7},
	"fast":        {0.2, 0.4},
	"favorite":    {0.4, 0.6},
	"fine":        {0.417, 0.444},
	"friendly":    {0.4, 0.6},
	"fun":         {0.3, 0.2},
	"glad":        {0.5, 1.0},
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"happy":       {0.8, 1.0},
	"helpful":     {0.4, 0.4},
	"impressed":   {0.65, 0.75},
	"impressive":  {0.65, 0.75},
	"interesting": {0.5, 0.5},
	"like":        {0.3, 0.4},
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.8},
	"lovely":      {0.5, 0.7},
	"nice":        {0.6, 1.0},
	"pleasant":    {0.5, 0.7},
	"pleased":     {0.5, 0.7},
	"recommend":   {0.3, 0.3},
	"reliable":    {0.4, 0.5},
	"satisfied":   {0.5, 0.6},
	"smart":       {0.4, 0.6},
	"smooth":      {0.4, 0.6},
	"solid":       {0.3, 0.4},
	"strong":      {0.35, 0.45},
	"sweet":       {0.35, 0.65},
	"thank":       {0.3, 0.4},
	"thanks":      {0.3, 0.4},
	"useful":      {0.3, 0.3},
	"valuable":    {0.4, 0.4},
	"win":         {0.4, 0.4},
	"works":       {0.2, 0.2},
	"worth":       {0.3, 0.3},

	// negative
	"angry":          {-0.5, 1.0},
	"annoyed":        {-0.4, 0.7},
	"annoying":       {-0.4, 0.7},
	"bad":            {-0.7, 0.667},
	"boring":         {-0.4, 0.6},
	"broke":          {-0.3, 0.4},
	"broken":         {-0.4, 0.5},
	"cheap":          {-0.4, 0.7},
	"confusing":      {-0.3, 0.5},
	"crap":           {-0.6, 0.8},
	"cry":            {-0.3, 0.5},
	"damaged":        {-0.4, 0.5},
	"dirty":          {-0.6, 0.8},
	"disappointed":   {-0.6, 0.7},
	"disappointing":  {-0.6, 0.7},
	"disappointment": {-0.6, 0.7},
	"dislike":        {-0.4, 0.5},
	"expensive":      {-0.3, 0.6},
	"fail":           {-0.5, 0.5},
	"failed":         {-0.5, 0.5},
	"failure":        {-0.5, 0.5},
	"fake":           {-0.5, 0.6},
	"frustrated":     {-0.5, 0.7},
	"frustrating":    {-0.5, 0.7},
	"hard":           {-0.292, 0.542},
	"hate":           {-0.8, 0.9},
	"hated":          {-0.9, 0.7},
	"lose":           {-0.4, 0.4},
	"lost":           {-0.3, 0.4},
	"mediocre":       {-0.3, 0.5},
	"mess":           {-0.4, 0.6},
	"poor":           {-0.4, 0.6},
	"problem":        {-0.3, 0.4},
	"problems":       {-0.3, 0.4},
	"regret":         {-0.5, 0.6},
	"sad":            {-0.5, 1.0},
	"slow":           {-0.3, 0.4},
	"sorry":          {-0.5, 1.0},
	"stupid":         {-0.8, 0.9},
	"terrible":       {-1.0, 1.0},
	"ugly":           {-0.7, 1.0},
	"unhappy":        {-0.6, 0.7},
	"unreliable":     {-0.4, 0.5},
	"upset":          {-0.5, 0.7},
	"useless":        {-0.5, 0.5},
	"weak":           {-0.35, 0.45},
	"worse":          {-0.6, 0.6},
	"wrong":          {-0.5, 0.5},

	// strongly negative
	"abysmal":    {-0.8, 0.9},
	"appalling":  {-0.9, 0.9},
	"atrocious":  {-0.9, 0.9},
	"awful":      {-1.0, 1.0},
	"disgusting": {-0.9, 1.0},
	"dreadful":   {-0.9, 0.9},
	"garbage":    {-0.7, 0.8},
	"horrible":   {-1.0, 1.0},
	"horrid":     {-0.9, 0.9},
	"pathetic":   {-0.8, 0.9},
	"worst":      {-1.0, 1.0},
}

// boosters are degree adverbs that scale the intensity of the next
// sentiment-laden word within the lookback window.
var boosters = map[string]float64{
	"absolutely": 1.4,
	"amazingly":  1.4,
	"completely": 1.35,
	"deeply":     1.3,
	"especially": 1.25,
	"extremely":  1.5,
	"highly":     1.3,
	"incredibly": 1.5,
	"pretty":     1.1,
	"quite":      1.15,
	"really":     1.3,
	"remarkably": 1.3,
	"so":         1.35,
	"super":      1.3,
	"too":        1.2,
	"totally":    1.3,
	"truly":      1.3,
	"utterly":    1.4,
	"very":       1.3,

	// dampeners
	"barely":     0.5,
	"hardly":     0.5,
	"kinda":      0.75,
	"marginally": 0.7,
	"slightly":   0.7,
	"somewhat":   0.75,
	"sorta":      0.75,
}

// negations flip the sign of the next sentiment-laden word. Contractions
// appear apostrophe-free because the cleaner strips punctuation first.
var negations = map[string]struct{}{
	"aint":     {},
	"arent":    {},
	"cannot":   {},
	"cant":     {},
	"couldnt":  {},
	"didnt":    {},
	"doesnt":   {},
	"dont":     {},
	"hasnt":    {},
	"havent":   {},
	"isnt":     {},
	"neither":  {},
	"never":    {},
	"no":       {},
	"nobody":   {},
	"none":     {},
	"nor":      {},
	"not":      {},
	"nothing":  {},
	"shouldnt": {},
	"wasnt":    {},
	"werent":   {},
	"without":  {},
	"wont":     {},
	"wouldnt":  {},
}
