package store

const (
	createUser = `INSERT INTO usuarios (login, senha, nome, criado_em, alterado_em)
    VALUES ($1, $2, $3, NOW(), NOW())
    RETURNING id, login, senha, nome, criado_em, alterado_em;`

	findUserByLogin = `SELECT id, login, senha, nome, criado_em, alterado_em
    FROM usuarios
    WHERE login = $1;`

	createRecipe = `INSERT INTO receitas (id_usuarios, id_categorias, nome, tempo_preparo_minutos, porcoes, modo_preparo, ingredientes, criado_em, alterado_em)
    VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
    RETURNING id, id_usuarios, id_categorias, nome, tempo_preparo_minutos, porcoes, modo_preparo, ingredientes, criado_em, alterado_em;`

	findRecipeByID = `SELECT id, id_usuarios, id_categorias, nome, tempo_preparo_minutos, porcoes, modo_preparo, ingredientes, criado_em, alterado_em
    FROM receitas
    WHERE id = $1 AND id_usuarios = $2;`

	deleteRecipe = `DELETE FROM receitas
    WHERE id = $1 AND id_usuarios = $2;`

	findCategoryByID = `SELECT id, nome
    FROM categorias
    WHERE id = $1;`
)
