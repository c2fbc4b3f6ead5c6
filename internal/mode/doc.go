// Package mode — автоматы режимов законов управления: определение полёта,
// выравнивание (flare), подъём носа, заморозка триммера, арбитраж защит и
// вовлечения функций FAC.
//
// Каждый автомат — явное перечисление состояний и функция перехода; условия
// проверяются в фиксированном порядке, одновременно выполнимые условия
// разрешаются этим порядком.
package mode
