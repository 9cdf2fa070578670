// Command docsisctl is a thin CLI collaborator over the docsis
// package (§6.2): it carries no business logic of its own, the same
// posture as the teacher's own cmd/hivectl commands over pkg/hive.
package main

func main() {
	execute()
}
