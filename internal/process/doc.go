// Package process terminates the headless browser's process tree.
//
// Chrome forks helper processes that outlive the main one when it is
// killed alone; KillTree targets the whole tree so no zombies remain
// after a CV is printed.
package process
