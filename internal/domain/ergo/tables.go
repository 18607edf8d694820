package ergo

// Табличные данные обоих методов. Таблицы неизменяемы и безопасны для
// одновременного чтения из любого числа горутин.

// clampInt ограничивает значение отрезком [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rulaTableA: [плечо-1][локоть-1][запястье-1] → балл группы A.
var rulaTableA = [4][2][3]int{
	{{1, 2, 2}, {2, 2, 3}},
	{{2, 3, 3}, {3, 3, 3}},
	{{3, 3, 4}, {3, 4, 4}},
	{{4, 4, 4}, {4, 4, 5}},
}

// rulaTableB: [шея-1][корпус-1] → балл группы B.
var rulaTableB = [3][4]int{
	{1, 2, 3, 5},
	{2, 2, 4, 5},
	{3, 3, 4, 5},
}

// rulaTableC: [A-1][B-1] → итоговый балл [1,7].
var rulaTableC = [8][7]int{
	{1, 2, 3, 3, 4, 5, 5},
	{2, 2, 3, 4, 4, 5, 5},
	{3, 3, 3, 4, 4, 5, 6},
	{3, 3, 3, 4, 5, 6, 6},
	{4, 4, 4, 5, 6, 7, 7},
	{4, 4, 5, 6, 6, 7, 7},
	{5, 5, 6, 6, 7, 7, 7},
	{5, 5, 6, 7, 7, 7, 7},
}

// rebaTableA: [корпус-1][шея+ноги-2] → балл группы A без учёта груза.
var rebaTableA = [5][7]int{
	{1, 2, 3, 4, 5, 6, 7},
	{2, 3, 4, 5, 6, 7, 8},
	{3, 4, 5, 6, 7, 8, 8},
	{4, 5, 6, 7, 8, 8, 9},
	{5, 6, 7, 8, 8, 9, 9},
}

// rebaTableB: [плечо-1][локоть+запястье-2] → балл группы B.
var rebaTableB = [6][6]int{
	{1, 2, 3, 4, 5, 6},
	{2, 3, 4, 5, 6, 7},
	{3, 4, 5, 6, 7, 8},
	{4, 5, 6, 7, 8, 9},
	{5, 6, 7, 8, 9, 10},
	{6, 7, 8, 9, 10, 11},
}

// rebaTableC: [A-1][B-1] → итоговый балл в родной 12-балльной шкале.
// Наружу он выдаётся сведённым к общей шкале [1,7].
var rebaTableC = [12][12]int{
	{1, 1, 1, 2, 3, 3, 4, 5, 6, 7, 7, 7},
	{1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 7, 8},
	{2, 3, 3, 3, 4, 5, 6, 7, 7, 8, 8, 8},
	{3, 4, 4, 4, 5, 6, 7, 8, 8, 9, 9, 9},
	{4, 4, 4, 5, 6, 7, 8, 8, 9, 9, 9, 9},
	{6, 6, 6, 7, 8, 8, 9, 9, 10, 10, 10, 10},
	{7, 7, 7, 8, 9, 9, 9, 10, 10, 11, 11, 11},
	{8, 8, 8, 9, 10, 10, 10, 10, 10, 11, 11, 11},
	{9, 9, 9, 10, 10, 10, 11, 11, 11, 12, 12, 12},
	{10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 12, 12},
	{11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12},
	{12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12},
}
