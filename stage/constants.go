package stage

// stepTimeTable is the gravity step duration in seconds, indexed by level.
var stepTimeTable = [...]float64{
	.799, .715, .632, .549, .466, .383, .300, .216, .133, .100,
	.083, .083, .083, .067, .067, .067, .050, .050, .050, .033,
	.033, .033, .033, .033, .033, .033, .033, .033, .033, .017,
}

// minStepTime applies to every level past the table.
const minStepTime = .017

// scoreTable is the base award for clearing 1, 2, 3 or 4 rows at once.
var scoreTable = [...]int{40, 100, 300, 1200}

// colorTable holds the two block colours of each level, cycling every ten.
var colorTable = [...][2]uint32{
	{0x0058F8, 0x3CBCFC},
	{0x00A800, 0xB8F818},
	{0xD800CC, 0xF878F8},
	{0x0058F8, 0x58D854},
	{0xE40058, 0x58F898},
	{0x58F898, 0x6888FC},
	{0xF83800, 0x7C7C7C},
	{0x6844FC, 0xA80020},
	{0x0058F8, 0xF83800},
	{0xF83800, 0xFCA044},
}

// DefaultHiScore is shown until a better score has been stored.
const DefaultHiScore = 10000

// StepDuration returns the gravity step duration for a level.
func StepDuration(level int) float64 {
	if level < 0 || level >= len(stepTimeTable) {
		return minStepTime
	}
	return stepTimeTable[level]
}

// LineScore returns the award for clearing rows at once on a level.
func LineScore(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	return scoreTable[min(rows, len(scoreTable))-1] * (level + 1)
}

// Colors returns the palette of a level.
func Colors(level int) [2]uint32 {
	return colorTable[max(level, 0)%len(colorTable)]
}

// Sound cues.
const (
	CueRotate = "rotate"
	CueLine   = "line"
	CueTetris = "tetris"
	CueUnited = "united"
	CueOver   = "over"
	CueLevel  = "level"
)

// Room geometry in pixels, used to derive the viewport scale.
const (
	CellSize     = 16
	ScreenWidth  = 512
	ScreenHeight = 448

	roomMaxSize      = 1300
	roomDefaultScale = 1.25
)
