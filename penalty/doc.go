// Package penalty converts constraint violations — excess vehicle load and
// route time warp — into a cost the local search can minimize alongside
// distance. The two multipliers are owned and tuned by the surrounding
// search controller (out of scope here); this package only holds them and
// applies them.
package penalty
