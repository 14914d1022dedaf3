// Package summary lists the organized data files under a destination tree.
package summary
