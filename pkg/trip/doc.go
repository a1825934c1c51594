// Package trip plans driving routes over a road map and describes them as
// turn-by-turn directions.
//
// # Maps
//
// A map file is a whitespace-separated sequence of entries:
//
//	L <name> <x> <y>                        a location at (x, y)
//	R <from> <road> <length> <dir> <to>     a road from one location to another
//
// Directions are NS, SN, EW and WE (travelling south, north, west and east).
// Every road also gets a reverse segment from <to> back to <from> with the
// opposite direction, so roads are always two-way.
//
// [ReadMap] and [ReadMapFile] parse this format into a [RoadMap], a labeled
// directed graph whose vertices carry [Location]s and whose edges carry
// [Road]s.
//
// # Planning
//
// A [Planner] finds the shortest route through a list of stops, one A*
// search per leg, guided by the straight-line distance to the leg's
// destination. The result is a [Report]:
//
//	From Albany:
//
//	1. Take San_Pablo_Ave south for 4.4 miles.
//	2. Take Powell_St west for 2.4 miles.
//	3. Take I-80 west for 5.2 miles to San_Francisco.
//
// Consecutive road segments with the same name and direction are merged into
// one step, and step numbers continue across legs.
//
// [Runner] adds report caching on top of the planner for the CLI.
package trip
