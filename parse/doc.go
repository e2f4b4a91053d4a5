// Package parse turns puzzle text lines into toggle-network problems.
//
// Each line describes one independent network:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// with the grammar
//
//	line     = '[' endstate ']' step+ counts?
//	endstate = ( '.' | '#' )+          one character per position
//	step     = '(' index { ',' index } ')'
//	counts   = '{' count { ',' count } '}'
//
// '.' marks a position that must stay off, '#' one that must end up on.
// Step indices refer to endstate positions and may not repeat within a
// step. The counts block is optional; when present it must carry exactly
// one value per position. Text between sections is ignored, so padded or
// indented lines parse the same.
//
// Syntax failures surface as package sentinels (ErrEndstate, ErrStep,
// ErrStepIndex, ...). Range failures - too many positions, too many steps,
// a count list of the wrong length - surface as the core package's
// construction errors. Both kinds match with errors.Is.
package parse
