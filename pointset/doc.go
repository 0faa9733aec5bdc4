// Package pointset provides a fixed-capacity history of 2D positions.
//
// A PointSet is a circular buffer: positions are appended until the buffer is
// full, after which each append overwrites the oldest stored position. Logical
// index 0 is always the oldest live position and Len()-1 the newest.
//
// PointSet is not safe for concurrent use; callers serialize access.
package pointset
