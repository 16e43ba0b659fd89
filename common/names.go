package common

// Names is the fixed table of symbolic color names accepted by ParseColor.
// The values follow the W3C basic and extended keyword definitions.
var Names = map[string]RGBColor{
	`black`:     {0, 0, 0},
	`white`:     {255, 255, 255},
	`red`:       {255, 0, 0},
	`lime`:      {0, 255, 0},
	`blue`:      {0, 0, 255},
	`green`:     {0, 128, 0},
	`yellow`:    {255, 255, 0},
	`cyan`:      {0, 255, 255},
	`aqua`:      {0, 255, 255},
	`magenta`:   {255, 0, 255},
	`fuchsia`:   {255, 0, 255},
	`silver`:    {192, 192, 192},
	`gray`:      {128, 128, 128},
	`grey`:      {128, 128, 128},
	`maroon`:    {128, 0, 0},
	`olive`:     {128, 128, 0},
	`purple`:    {128, 0, 128},
	`teal`:      {0, 128, 128},
	`navy`:      {0, 0, 128},
	`orange`:    {255, 165, 0},
	`pink`:      {255, 192, 203},
	`brown`:     {165, 42, 42},
	`gold`:      {255, 215, 0},
	`violet`:    {238, 130, 238},
	`indigo`:    {75, 0, 130},
	`salmon`:    {250, 128, 114},
	`turquoise`: {64, 224, 208},
}
