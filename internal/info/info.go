// SPDX-License-Identifier: GPL-3.0-or-later

package info

// VERSION current version of go-masscan
const VERSION = "v0.1.0"
