package locations

// gazetteer is the bundled table of federative units and their main cities.
// City order is meaningful and kept as listed.
var gazetteer = map[string]State{
	"AC": {
		Code: "AC",
		Name: "Acre",
		Cities: []string{
			"Rio Branco", "Cruzeiro do Sul", "Sena Madureira", "Tarauacá", "Feijó", "Brasileia",
			"Epitaciolândia", "Xapuri", "Plácido de Castro", "Senador Guiomard",
		},
	},
	"AL": {
		Code: "AL",
		Name: "Alagoas",
		Cities: []string{
			"Maceió", "Arapiraca", "Rio Largo", "Palmeira dos Índios", "União dos Palmares",
			"Penedo", "São Miguel dos Campos", "Santana do Ipanema", "Delmiro Gouveia",
			"Coruripe",
		},
	},
	"AP": {
		Code: "AP",
		Name: "Amapá",
		Cities: []string{
			"Macapá", "Santana", "Laranjal do Jari", "Oiapoque", "Mazagão", "Porto Grande",
			"Tartarugalzinho", "Pedra Branca do Amapari", "Vitória do Jari", "Calçoene",
		},
	},
	"AM": {
		Code: "AM",
		Name: "Amazonas",
		Cities: []string{
			"Manaus", "Parintins", "Itacoatiara", "Manacapuru", "Coari", "Tefé", "Tabatinga",
			"Maués", "Humaitá", "Iranduba",
		},
	},
	"BA": {
		Code: "BA",
		Name: "Bahia",
		Cities: []string{
			"Salvador", "Feira de Santana", "Vitória da Conquista", "Camaçari", "Juazeiro",
			"Itabuna", "Lauro de Freitas", "Ilhéus", "Jequié", "Teixeira de Freitas",
			"Alagoinhas", "Barreiras", "Porto Seguro", "Simões Filho", "Paulo Afonso",
		},
	},
	"CE": {
		Code: "CE",
		Name: "Ceará",
		Cities: []string{
			"Fortaleza", "Caucaia", "Juazeiro do Norte", "Maracanaú", "Sobral", "Crato",
			"Itapipoca", "Maranguape", "Iguatu", "Quixadá", "Pacatuba", "Aquiraz", "Russas",
			"Canindé", "Pacajus",
		},
	},
	"DF": {
		Code: "DF",
		Name: "Distrito Federal",
		Cities: []string{
			"Brasília", "Ceilândia", "Taguatinga", "Samambaia", "Plano Piloto", "Águas Claras",
			"Recanto das Emas", "Gama", "Guará", "Santa Maria",
		},
	},
	"ES": {
		Code: "ES",
		Name: "Espírito Santo",
		Cities: []string{
			"Vitória", "Vila Velha", "Serra", "Cariacica", "Linhares", "Cachoeiro de Itapemirim",
			"Colatina", "Guarapari", "São Mateus", "Aracruz",
		},
	},
	"GO": {
		Code: "GO",
		Name: "Goiás",
		Cities: []string{
			"Goiânia", "Aparecida de Goiânia", "Anápolis", "Rio Verde", "Luziânia",
			"Águas Lindas de Goiás", "Valparaíso de Goiás", "Trindade", "Formosa", "Novo Gama",
			"Itumbiara", "Senador Canedo", "Catalão", "Jataí", "Planaltina",
		},
	},
	"MA": {
		Code: "MA",
		Name: "Maranhão",
		Cities: []string{
			"São Luís", "Imperatriz", "São José de Ribamar", "Timon", "Caxias", "Codó",
			"Paço do Lumiar", "Açailândia", "Bacabal", "Balsas",
		},
	},
	"MT": {
		Code: "MT",
		Name: "Mato Grosso",
		Cities: []string{
			"Cuiabá", "Várzea Grande", "Rondonópolis", "Sinop", "Tangará da Serra", "Cáceres",
			"Sorriso", "Lucas do Rio Verde", "Primavera do Leste", "Barra do Garças",
		},
	},
	"MS": {
		Code: "MS",
		Name: "Mato Grosso do Sul",
		Cities: []string{
			"Campo Grande", "Dourados", "Três Lagoas", "Corumbá", "Ponta Porã", "Naviraí",
			"Nova Andradina", "Aquidauana", "Sidrolândia", "Paranaíba",
		},
	},
	"MG": {
		Code: "MG",
		Name: "Minas Gerais",
		Cities: []string{
			"Belo Horizonte", "Uberlândia", "Contagem", "Juiz de Fora", "Betim", "Montes Claros",
			"Ribeirão das Neves", "Uberaba", "Governador Valadares", "Ipatinga", "Sete Lagoas",
			"Divinópolis", "Santa Luzia", "Ibirité", "Poços de Caldas",
		},
	},
	"PA": {
		Code: "PA",
		Name: "Pará",
		Cities: []string{
			"Belém", "Ananindeua", "Santarém", "Marabá", "Parauapebas", "Castanhal", "Abaetetuba",
			"Cametá", "Marituba", "Bragança",
		},
	},
	"PB": {
		Code: "PB",
		Name: "Paraíba",
		Cities: []string{
			"João Pessoa", "Campina Grande", "Santa Rita", "Patos", "Bayeux", "Sousa",
			"Cajazeiras", "Cabedelo", "Guarabira", "Sapé",
		},
	},
	"PR": {
		Code: "PR",
		Name: "Paraná",
		Cities: []string{
			"Curitiba", "Londrina", "Maringá", "Ponta Grossa", "Cascavel", "São José dos Pinhais",
			"Foz do Iguaçu", "Colombo", "Guarapuava", "Paranaguá", "Araucária", "Toledo",
			"Apucarana", "Pinhais", "Campo Largo",
		},
	},
	"PE": {
		Code: "PE",
		Name: "Pernambuco",
		Cities: []string{
			"Recife", "Jaboatão dos Guararapes", "Olinda", "Caruaru", "Petrolina", "Paulista",
			"Cabo de Santo Agostinho", "Camaragibe", "Garanhuns", "Vitória de Santo Antão",
		},
	},
	"PI": {
		Code: "PI",
		Name: "Piauí",
		Cities: []string{
			"Teresina", "Parnaíba", "Picos", "Piripiri", "Floriano", "Campo Maior", "Barras",
			"União", "Altos", "José de Freitas",
		},
	},
	"RJ": {
		Code: "RJ",
		Name: "Rio de Janeiro",
		Cities: []string{
			"Rio de Janeiro", "São Gonçalo", "Duque de Caxias", "Nova Iguaçu", "Niterói",
			"Belford Roxo", "Campos dos Goytacazes", "São João de Meriti", "Petrópolis",
			"Volta Redonda", "Magé", "Itaboraí", "Macaé", "Mesquita", "Nilópolis",
		},
	},
	"RN": {
		Code: "RN",
		Name: "Rio Grande do Norte",
		Cities: []string{
			"Natal", "Mossoró", "Parnamirim", "São Gonçalo do Amarante", "Macaíba", "Ceará-Mirim",
			"Caicó", "Assu", "Currais Novos", "São José de Mipibu",
		},
	},
	"RS": {
		Code: "RS",
		Name: "Rio Grande do Sul",
		Cities: []string{
			"Porto Alegre", "Caxias do Sul", "Pelotas", "Canoas", "Santa Maria", "Gravataí",
			"Viamão", "Novo Hamburgo", "São Leopoldo", "Rio Grande", "Alvorada", "Passo Fundo",
			"Sapucaia do Sul", "Uruguaiana", "Santa Cruz do Sul",
		},
	},
	"RO": {
		Code: "RO",
		Name: "Rondônia",
		Cities: []string{
			"Porto Velho", "Ji-Paraná", "Ariquemes", "Vilhena", "Cacoal", "Rolim de Moura",
			"Jaru", "Guajará-Mirim", "Ouro Preto do Oeste", "Pimenta Bueno",
		},
	},
	"RR": {
		Code: "RR",
		Name: "Roraima",
		Cities: []string{
			"Boa Vista", "Rorainópolis", "Caracaraí", "Alto Alegre", "Mucajaí", "Cantá",
			"Pacaraima", "Bonfim", "São João da Baliza", "Normandia",
		},
	},
	"SC": {
		Code: "SC",
		Name: "Santa Catarina",
		Cities: []string{
			"Florianópolis", "Joinville", "Blumenau", "São José", "Chapecó", "Criciúma", "Itajaí",
			"Jaraguá do Sul", "Lages", "Palhoça", "Balneário Camboriú", "Brusque", "Tubarão",
			"São Bento do Sul", "Caçador",
		},
	},
	"SP": {
		Code: "SP",
		Name: "São Paulo",
		Cities: []string{
			"São Paulo", "Guarulhos", "Campinas", "São Bernardo do Campo", "Santo André",
			"Osasco", "São José dos Campos", "Ribeirão Preto", "Sorocaba", "Santos", "Mauá",
			"São José do Rio Preto", "Mogi das Cruzes", "Diadema", "Jundiaí", "Piracicaba",
			"Carapicuíba", "Bauru", "Itaquaquecetuba", "São Vicente",
		},
	},
	"SE": {
		Code: "SE",
		Name: "Sergipe",
		Cities: []string{
			"Aracaju", "Nossa Senhora do Socorro", "Lagarto", "Itabaiana", "São Cristóvão",
			"Estância", "Tobias Barreto", "Itabaianinha", "Simão Dias", "Capela",
		},
	},
	"TO": {
		Code: "TO",
		Name: "Tocantins",
		Cities: []string{
			"Palmas", "Araguaína", "Gurupi", "Porto Nacional", "Paraíso do Tocantins",
			"Colinas do Tocantins", "Guaraí", "Tocantinópolis", "Dianópolis",
			"Miracema do Tocantins",
		},
	},
}
