/*
go-pawss computes patch based, adaptively weighted appearance features for
online single object tracking.

A candidate object rectangle is tiled into a grid of patches and each patch
is described by color, motion or gradient orientation histograms queried in
constant time from per bin integral images.  A foreground model learnt online
from the confirmed object location weights every patch by how reliably it
belongs to the object, so patches corrupted by occlusion or background clutter
contribute less to the descriptor.

The Feature interface in this package is the contract consumed by a tracker,
implementations live in the feature subdirectory.  See the example
subdirectory for a demo running over an image sequence.
*/
package pawss
