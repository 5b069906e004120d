/*
Package chunk indexes immutable text chunks by line and computes the
positions reached when chunks are composed forward or backward.

A chunk records the offset of every line start at construction time, so
row/column questions never rescan text of chunks already processed. Only '\n'
terminates a line; columns are byte offsets.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package chunk
