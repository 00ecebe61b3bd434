// Package floorplan implements the residential floor-plan generation
// pipeline: normalize a design brief, derive a buildable envelope, zone the
// footprint, greedily place rooms on a grid, repair circulation, assign
// windows and walls, and score the result.
//
// Every exported stage function is a pure function of its inputs. No stage
// returns an error - unsatisfiable requirements are surfaced as warnings,
// unplaced-room lists, or degraded scores rather than failures. See
// NormalizedBrief.Warnings, PlacedPlan.UnplacedRoomIDs, and
// CirculationResult.IsFullyConnected.
package floorplan
