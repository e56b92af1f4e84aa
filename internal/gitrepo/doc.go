// Package gitrepo resolves filesystem locations to git repository roots by
// shelling out to the git CLI through the execshell abstractions.
package gitrepo
