// Command apfsck checks an APFS catalog dump for metadata corruption.
// It never repairs anything: the first confirmed inconsistency is
// reported and the run aborts with a non-zero exit code.
package main

func main() {
	execute()
}
