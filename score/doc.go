// SPDX-License-Identifier: MIT

// Package score reduces intuitionistic fuzzy values to crisp numbers.
//
// Every score is a named Func over one ifs.Value and reads only μ and ν
// (π, where a formula needs it, is taken as 1-μ-ν). The same formula is
// applied elementwise by Vector and Grid, so a single cell, a criterion row
// and a full decision matrix always agree.
//
// Built-ins (registry name → formula):
//
//	chen_1     μ - ν
//	chen_2     yμ + (1-y)(1-ν), y = 0.5 (ChenY for other y)
//	kharal_1   μ - (ν + (1-μ-ν)) / 2
//	kharal_2   (μ + ν) / 2 - (1-μ-ν)
//	liu_wang   μ + μ(1-μ-ν)
//	supriya    μ - ν(1-μ-ν)
//	thakur     μ² - ν²
//	wan_dong_1 ½((μ - ν)/2 + 1)
//	wan_dong_2 ((μ - ν) + 1) / 2
//	wei        cos(|μ - ν| / (2(1+π)) · π)
//	zhang_xu_1 (1 - ν) / (2 - μ - ν)
//	zhang_xu_2 1 - (1-μ)/(μ+ν), 0 when μ+ν = 0
//
// Use Lookup to resolve a name and Names to list them.
package score
