/*
Package assert provides internal consistency checks that panic when violated.

A failed assertion means a backing store was corrupted, not that a caller misused the
API; it should never fire on correct input. Build with the 'noassert' tag to compile
the checks out.
*/
package assert
