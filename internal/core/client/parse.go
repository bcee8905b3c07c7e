package client

import "strings"

// ParseUserList extracts usernames from `openvpn-ctl list` output.
//
// Blank lines are dropped, as is any line whose lowercase form starts with
// "name" (the table header). This also drops users whose name begins with
// "name"; the tool offers no structured output to do better.
func ParseUserList(out string) []string {
	users := []string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "name") {
			continue
		}
		users = append(users, strings.TrimSpace(line))
	}
	return users
}
