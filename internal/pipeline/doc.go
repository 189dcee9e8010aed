// Package pipeline runs a scan end to end: it partitions a loaded FASTA
// buffer into byte regions, scans them on a pool of workers that each
// accumulate their own output, and drains every worker's output once, under a
// lock, into the shared stream. RunSerial is the single-threaded streaming
// equivalent used as the reference.
package pipeline
