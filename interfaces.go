/*
 * interfaces.go, part of tcint.
 *
 * Copyright 2024 The tcint Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package tcint

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given string (usually the name of the calling function) to the decoration slice and returns the slice. An empty string only returns the current value.
}

// CriticalError is an Error that can tell whether the operation that produced it
// left anything usable behind. All the errors in the integral engine are critical.
type CriticalError interface {
	Error
	Critical() bool
}

// plainError is the Error returned by the functions of this package.
type plainError struct {
	message string
	deco    []string
}

func (err *plainError) Error() string { return err.message }

func (err *plainError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *plainError) Critical() bool { return true }
