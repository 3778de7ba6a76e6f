package constants

import "time"

var AIInputLimits = struct {
	MinAnalyzeLength int
	MaxAnalyzeLength int
}{
	MinAnalyzeLength: 50,   // below this, analysis quality collapses
	MaxAnalyzeLength: 2000, // excess is truncated before prompting
}

var StageTemperatures = struct {
	Analyze  float64
	Generate float64
	Beautify float64
}{
	Analyze:  0.7,
	Generate: 0.9, // intentionally higher for the creative stage
	Beautify: 0.75,
}

var ValidatorBounds = struct {
	MaxKeywords  int
	MaxCoreViews int
	MaxVariants  int
}{
	MaxKeywords:  8,
	MaxCoreViews: 5,
	MaxVariants:  3,
}

var RetryConfig = struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
}{
	BaseDelay: 500 * time.Millisecond,
	MaxDelay:  8 * time.Second,
}

var RedisConfig = struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}{
	DialTimeout:  5 * time.Second,
	ReadTimeout:  3 * time.Second,
	WriteTimeout: 3 * time.Second,
	PoolSize:     10,
}

var RelayConfig = struct {
	ForwardTimeout  time.Duration
	ShutdownTimeout time.Duration
}{
	ForwardTimeout:  120 * time.Second,
	ShutdownTimeout: 10 * time.Second,
}

// Fallback values substituted by the beautify validator when fields are absent.
var AigcDefaults = struct {
	Negative string
	Ratio    string
	StyleRef string
}{
	Negative: "blurry, watermark, text overlay, oversaturated, deformed",
	Ratio:    "9:16",
	StyleRef: "photography",
}
